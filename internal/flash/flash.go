// Package flash хранит одноразовые сообщения между редиректом и следующей
// страницей в подписанной HMAC-SHA256 куке.
package flash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"
)

const cookieName = "flash"

// Категории сообщений, совпадают с классами alert-* в шаблонах.
const (
	Success = "success"
	Info    = "info"
	Warning = "warning"
	Danger  = "danger"
)

// Message одно сообщение пользователю.
type Message struct {
	Category string `json:"c"`
	Text     string `json:"t"`
}

type Flash struct {
	SecretKey string
}

func New(secret string) *Flash {
	return &Flash{SecretKey: secret}
}

// Создать подпись
func (f *Flash) sign(payload string) string {
	mac := hmac.New(sha256.New, []byte(f.SecretKey))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// Set записывает сообщения в куку вида payload.signature.
func (f *Flash) Set(w http.ResponseWriter, messages ...Message) {
	if len(messages) == 0 {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    f.Encode(messages),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop читает сообщения из запроса и удаляет куку.
// Кука с неверной подписью молча отбрасывается.
func (f *Flash) Pop(w http.ResponseWriter, r *http.Request) []Message {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	messages, ok := f.Decode(cookie.Value)
	if !ok {
		return nil
	}
	return messages
}

// Encode сериализует и подписывает сообщения.
func (f *Flash) Encode(messages []Message) string {
	data, _ := json.Marshal(messages)
	payload := base64.RawURLEncoding.EncodeToString(data)
	return payload + "." + f.sign(payload)
}

// Decode проверяет подпись и разбирает сообщения.
func (f *Flash) Decode(value string) ([]Message, bool) {
	payload, sig, found := strings.Cut(value, ".")
	if !found || !hmac.Equal([]byte(f.sign(payload)), []byte(sig)) {
		return nil, false
	}

	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, false
	}
	var messages []Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, false
	}
	return messages, true
}
