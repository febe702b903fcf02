// Package network provides the HTTP clients used for metadata requests and media downloads.
package network

import (
	"net/http"
	"time"

	"github.com/clipdrop/clipdrop/key"
	"github.com/spf13/viper"
)

// Client is the shared client for media downloads. Per-request deadlines come from contexts.
var Client = &http.Client{
	Timeout:   5 * time.Minute,
	Transport: newTransport(),
}

// newTransport clones the default transport with a small pool; requests are sequential.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 4
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 5 * time.Second
	return t
}

// API returns the client for metadata requests, switching to the browser fingerprint when network.fingerprint is set.
func API() *http.Client {
	if viper.GetBool(key.NetworkFingerprint) {
		return &http.Client{Transport: NewBrowserTransport()}
	}
	return Client
}
