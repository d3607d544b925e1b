package web

import (
	"fmt"
)

type Request struct {
	PlayerId string                 `json:"playerId"`
	Action   string                 `json:"action"`
	Args     map[string]interface{} `json:"args"`
}

func BuildRequest(id string, action string, args map[string]interface{}) Request {
	return Request{
		PlayerId: id,
		Action:   action,
		Args:     args,
	}
}

func (r *Request) GetId() string {
	return r.PlayerId
}

func (r *Request) GetAction() string {
	return r.Action
}

func (r *Request) GetArgs() map[string]interface{} {
	return r.Args
}

// IntArg returns the integer argument key. Numbers decoded from JSON arrive as float64 and
// are accepted when they have no fractional part.
func (r *Request) IntArg(key string) (int, error) {
	v, ok := r.Args[key]
	if !ok {
		return 0, fmt.Errorf("missing value for %s", key)
	}
	switch value := v.(type) {
	case int:
		return value, nil
	case float64:
		if value != float64(int(value)) {
			return 0, fmt.Errorf("invalid value for %s", key)
		}
		return int(value), nil
	default:
		return 0, fmt.Errorf("invalid value for %s", key)
	}
}

func (r *Request) StringArg(key string) (string, error) {
	v, ok := r.Args[key]
	if !ok {
		return "", fmt.Errorf("missing value for %s", key)
	}
	value, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("invalid value for %s", key)
	}
	return value, nil
}

type Response struct {
	Action  string                 `json:"action"`
	Message string                 `json:"message"`
	Args    map[string]interface{} `json:"args"`
}

func BuildResponse(action string, message string, args map[string]interface{}) Response {
	return Response{
		Action:  action,
		Message: message,
		Args:    args,
	}
}

func (r *Response) GetAction() string {
	return r.Action
}

func (r *Response) GetMessage() string {
	return r.Message
}

func (r *Response) GetArgs() map[string]interface{} {
	return r.Args
}
