package controllers

import (
	gm_uuid "github.com/girl-math/backend/internal/uuid"
)

type URIID struct {
	ID gm_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}
