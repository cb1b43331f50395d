package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/decred/slog"
)

// Client はバックエンドAPIのHTTPクライアント。
// cookiejar でセッションcookieを保持する（資格情報つきリクエスト）。
type Client struct {
	baseURL string
	http    *http.Client
	jar     *cookiejar.Jar
	log     slog.Logger
}

func New(baseURL string, timeout time.Duration, log slog.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = slog.Disabled
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
		jar: jar,
		log: log,
	}, nil
}

// BaseURL はベースURL（cookie永続化のキーに使う）。
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doJSON はJSONボディの送受信。2xx以外はエラーへ変換する。
func (c *Client) doJSON(ctx context.Context, method string, path string, in interface{}, out interface{}) error {
	var reqBody io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

// doForm はform-encoded送信（ログインのみ）。
func (c *Client) doForm(ctx context.Context, method string, path string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		// トランスポート層の失敗（接続不可・タイムアウト）
		c.log.Debugf("%s %s: transport error: %v", req.Method, req.URL.Path, err)
		return &NetworkError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out != nil && len(data) > 0 {
			return json.Unmarshal(data, out)
		}
		return nil
	}

	return newStatusError(resp.StatusCode, data)
}
