package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// GenericConvertError is shown when the service rejects a conversion without
// a usable detail message.
const GenericConvertError = "conversion failed"

// RemoteError is a non-2xx response from the backing service. Detail carries
// the response body's "detail" field when present.
type RemoteError struct {
	Status int
	Detail string
}

func (e *RemoteError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("service returned status %d", e.Status)
}

// remoteErrorFrom builds a RemoteError from a failed response, decoding the
// {"detail": ...} body shape. Reads at most a small prefix of the body.
func remoteErrorFrom(resp *http.Response) *RemoteError {
	re := &RemoteError{Status: resp.StatusCode}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return re
	}
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil {
		re.Detail = er.Detail
	}
	return re
}
