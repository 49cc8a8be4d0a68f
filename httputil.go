package brokerage

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"
)

// contains http utils to deal with remote quote services

// diskCache caches successful HTTP responses on disk, one file per request.
// The key includes the current day, so cached quotes expire daily.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) cacheFile(req *http.Request) string {
	key := time.Now().Format("2006-01-02") + " " + req.Method + " " + req.URL.String()
	return filepath.Join(os.TempDir(), fmt.Sprintf("%x", sha1.Sum([]byte(key))))
}

func (c *diskCache) RoundTrip(req *http.Request) (*http.Response, error) {
	file := c.cacheFile(req)
	if content, err := os.ReadFile(file); err == nil { // Cache hit
		return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	content, err := httputil.DumpResponse(resp, true)
	if err == nil {
		err = os.WriteFile(file, content, 0644)
	}
	if err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// daily returns a client whose cache expires every day.
func daily() *http.Client {
	return &http.Client{Transport: &diskCache{http.DefaultTransport}}
}

// jwget performs an HTTP GET request and unmarshals the JSON response into data.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(data)
}
