package fileconv

import "encoding/base64"

// Envelope is the outbound JSON representation of a conversion outcome:
// converted bytes travel base64-encoded alongside their metadata.
type Envelope struct {
	Success     bool   `json:"success"`
	Filename    string `json:"filename,omitempty"`
	ContentType string `json:"contentType,omitempty"`
	Data        string `json:"data,omitempty"`
	Size        int    `json:"size,omitempty"`
	Error       string `json:"error,omitempty"`
}

// EncodeResult packages a successful result for transport.
func EncodeResult(res *Result) Envelope {
	return Envelope{
		Success:     true,
		Filename:    res.Filename,
		ContentType: res.ContentType,
		Data:        base64.StdEncoding.EncodeToString(res.Data),
		Size:        res.Size(),
	}
}

// EncodeError packages a failure for transport.
func EncodeError(err error) Envelope {
	return Envelope{
		Success: false,
		Error:   err.Error(),
	}
}
