package smtp

import "errors"

var (
	ErrNoSender    = errors.New("smtp: email has no sender address")
	ErrBuildFailed = errors.New("smtp: failed to build message")
	ErrSendFailed  = errors.New("smtp: failed to send email")
	ErrDialFailed  = errors.New("smtp: failed to reach relay")
)
