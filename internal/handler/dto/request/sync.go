package request

import (
	"encoding/json"
)

// SyncChangesRequest keeps Changes raw so a wrong shape is reported as an
// invalid batch rather than a bad request. An absent field stays nil.
type SyncChangesRequest struct {
	Changes json.RawMessage `json:"changes" swaggertype:"array,object"`
}
