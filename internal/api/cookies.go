package api

import (
	"encoding/json"
	"net/http"
	"net/url"

	"app/internal/repository"
)

// セッションcookieをプロセスをまたいで引き継ぐためのスロットキー。
const cookieSlotKey = "session_cookies"

type storedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SaveCookies はjar内のセッションcookieをローカルスロットへ保存する。
func (c *Client) SaveCookies(slot repository.Slot) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return err
	}

	cookies := c.jar.Cookies(u)
	if len(cookies) == 0 {
		return slot.Delete(cookieSlotKey)
	}

	stored := make([]storedCookie, 0, len(cookies))
	for _, ck := range cookies {
		stored = append(stored, storedCookie{Name: ck.Name, Value: ck.Value})
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return err
	}
	return slot.Put(cookieSlotKey, data)
}

// RestoreCookies は保存済みcookieをjarへ戻す。無ければ何もしない。
func (c *Client) RestoreCookies(slot repository.Slot) error {
	data, ok, err := slot.Get(cookieSlotKey)
	if err != nil || !ok {
		return err
	}

	var stored []storedCookie
	if err := json.Unmarshal(data, &stored); err != nil {
		// 壊れたスロットは捨てる
		return slot.Delete(cookieSlotKey)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return err
	}

	cookies := make([]*http.Cookie, 0, len(stored))
	for _, sc := range stored {
		cookies = append(cookies, &http.Cookie{Name: sc.Name, Value: sc.Value})
	}
	c.jar.SetCookies(u, cookies)
	return nil
}
