// Package fetch retrieves media bytes from a caller-supplied source,
// either an http(s) URL or a local path.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

func Bytes(src string) ([]byte, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		resp, err := http.Get(src)
		if nil != err {
			return nil, fmt.Errorf("unable to fetch %v: %w", src, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unable to fetch %v: status %v", src, resp.Status)
		}
		return io.ReadAll(resp.Body)
	}
	return os.ReadFile(src)
}
