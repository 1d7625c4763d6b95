package errors

import "errors"

var (
	ErrIPReceivedMismatch = errors.New("mismatching IP address received")
	ErrRecordIDNotFound   = errors.New("record ID not found")
	ErrRecordIDsTooMany   = errors.New("too many record IDs found")
	ErrRequestEncode      = errors.New("cannot encode request")
	ErrUnmarshalResponse  = errors.New("cannot unmarshal update response")
	ErrUnsuccessful       = errors.New("unsuccessful response")
	ErrZoneNotFound       = errors.New("zone not found")
)
