package middleware

import (
	"github.com/gin-gonic/gin"
)

// Audit action types recorded for catalog changes.
const (
	ActionUpsertMenuItem = "upsert_menu_item"
	ActionDeleteMenuItem = "delete_menu_item"
)

// AuditLog records a state-changing action by the authenticated caller.
func AuditLog(sink *AsyncLogger, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	entry := newLogEntry(c, "info", message)
	entry.ActionType = actionType
	entry.WithFields(fields)
	sink.Log(entry)
}

// AuditLogError records a failed state-changing action.
func AuditLogError(sink *AsyncLogger, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	entry := newLogEntry(c, "error", message)
	entry.ActionType = actionType
	if err != nil {
		entry.Error = err.Error()
	}
	entry.WithFields(fields)
	sink.Log(entry)
}
