package proto

import "encoding/json"

// messageEnvelope is the JSON shape handed to ask/notify helper commands
// through the WL_MITM_MSG_JSON environment variable.
type messageEnvelope struct {
	Interface string         `json:"interface"`
	Message   string         `json:"message"`
	MsgType   string         `json:"msg_type"`
	ObjectID  uint32         `json:"object_id"`
	Args      map[string]any `json:"args"`
}

// MessageJSON serialises a parsed message for consumption by external
// helper commands.
func MessageJSON(m ParsedMessage) ([]byte, error) {
	return json.Marshal(messageEnvelope{
		Interface: m.ObjectType().Interface(),
		Message:   m.MsgName(),
		MsgType:   m.MsgType().String(),
		ObjectID:  m.ObjectID(),
		Args:      m.Args(),
	})
}
