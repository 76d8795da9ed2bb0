package classfolio

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/etnz/classfolio/date"
)

// dailyCache keeps successful GET responses on disk until the end of the day.
//
// Documents published from a data url change at most once a day, after the
// scheduled price update.
type dailyCache struct {
	base  http.RoundTripper
	dir   string
	today func() date.Date
}

// key identifies a request for the current day.
func (c *dailyCache) key(req *http.Request) string {
	return fmt.Sprintf("%x", sha1.Sum([]byte(c.today().String()+" "+req.URL.String())))
}

func (c *dailyCache) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return c.base.RoundTrip(req)
	}
	file := filepath.Join(c.dir, c.key(req))
	if content, err := os.ReadFile(file); err == nil {
		if resp, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req); err == nil {
			return resp, nil
		}
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("GET %v%v %v", req.URL.Host, req.URL.Path, resp.Status)
	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}
	// DumpResponse replaces the body with an in-memory copy.
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(file, content, 0644); err != nil {
		log.Printf("cannot cache %v (ignored): %v", req.URL, err)
	}
	return resp, nil
}

// DailyClient returns a client caching successful GET responses in dir
// for the rest of the day. An empty dir means the system temp dir.
func DailyClient(dir string) *http.Client {
	if dir == "" {
		dir = os.TempDir()
	}
	return &http.Client{Transport: &dailyCache{base: http.DefaultTransport, dir: dir, today: date.Today}}
}
