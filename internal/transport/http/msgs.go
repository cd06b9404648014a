package http

const (
	MsgInvalidID     = "invalid id"
	MsgInvalidJSON   = "invalid JSON"
	MsgValidation    = "validation error"
	MsgNotFound      = "not found"
	MsgInternal      = "internal error"
	MsgConflict      = "conflict"
	MsgInvalidDate   = "invalid date"
	MsgInvalidCanvas = "invalid canvas size"
	MsgEmptyUpdate   = "nothing to update"
)
