package app

import (
	"context"
	"io"
	"net/http"
	"time"
)

var httpc = &http.Client{Timeout: 15 * time.Second}

// probeStatus issues a GET and returns the response status code, retrying
// briefly on 429/5xx. The body is discarded.
func probeStatus(ctx context.Context, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", "SaaSName/0.1 (availability check)")

	var status int
	for attempt := 0; attempt < 3; attempt++ {
		res, err := httpc.Do(req)
		if err != nil {
			return 0, err
		}
		io.Copy(io.Discard, io.LimitReader(res.Body, 4096))
		res.Body.Close()

		status = res.StatusCode
		if status == http.StatusTooManyRequests || status >= 500 {
			select {
			case <-time.After(time.Duration(250*(attempt+1)) * time.Millisecond):
			case <-ctx.Done():
				return 0, ctx.Err()
			}
			continue
		}
		break
	}
	return status, nil
}
