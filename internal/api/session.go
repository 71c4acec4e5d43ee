package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"
)

// storedCookie is the serializable subset of http.Cookie needed to
// rebuild the session jar in a later process.
type storedCookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Path    string    `json:"path,omitempty"`
	Domain  string    `json:"domain,omitempty"`
	Expires time.Time `json:"expires,omitempty"`
}

// ErrNoSession is returned by PersistSession when the jar holds no
// cookies for the backend, i.e. no login has happened.
var ErrNoSession = errors.New("no session to persist")

// PersistSession writes the backend's session cookies to the
// credential store so later invocations stay signed in.
func (c *Client) PersistSession() error {
	if c.creds == nil {
		return nil
	}
	cookies := c.jar.Cookies(c.base)
	if len(cookies) == 0 {
		return ErrNoSession
	}
	encoded, err := encodeCookies(cookies)
	if err != nil {
		return err
	}
	return c.creds.SetSession(encoded)
}

// ClearSession drops the in-memory jar and removes any persisted
// session from the credential store.
func (c *Client) ClearSession() error {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return err
	}
	c.jar = jar
	c.http.Jar = jar

	if c.creds == nil {
		return nil
	}
	if err := c.creds.DeleteSession(); err != nil {
		// A missing entry is not a failure; there was nothing to clear.
		return nil
	}
	return nil
}

func (c *Client) restoreSession() error {
	encoded, err := c.creds.GetSession()
	if err != nil {
		return err
	}
	cookies, err := decodeCookies(encoded)
	if err != nil {
		return fmt.Errorf("stored session is corrupt: %w", err)
	}
	c.jar.SetCookies(c.base, cookies)
	return nil
}

func encodeCookies(cookies []*http.Cookie) (string, error) {
	stored := make([]storedCookie, len(cookies))
	for i, ck := range cookies {
		stored[i] = storedCookie{
			Name:    ck.Name,
			Value:   ck.Value,
			Path:    ck.Path,
			Domain:  ck.Domain,
			Expires: ck.Expires,
		}
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeCookies(encoded string) ([]*http.Cookie, error) {
	var stored []storedCookie
	if err := json.Unmarshal([]byte(encoded), &stored); err != nil {
		return nil, err
	}
	cookies := make([]*http.Cookie, len(stored))
	for i, sc := range stored {
		cookies[i] = &http.Cookie{
			Name:    sc.Name,
			Value:   sc.Value,
			Path:    sc.Path,
			Domain:  sc.Domain,
			Expires: sc.Expires,
		}
	}
	return cookies, nil
}
