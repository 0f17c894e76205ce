// Copyright © 2024 The Carafe Authors
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package carafe

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"
	"errors"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 64000
	keySize          = 32
)

var ErrMissingCookieSecret = errors.New("secret key for secure cookies has not been set, assign ServerConfig.CookieSecret")

// SetSecureCookie stores val encrypted and signed under the given cookie
// name. Duration is in seconds, zero means permanent.
func (ctx *Context) SetSecureCookie(name string, val string, age int64) error {
	server := ctx.Server
	if len(server.encKey) == 0 || len(server.signKey) == 0 {
		return ErrMissingCookieSecret
	}
	ciphertext, err := encrypt([]byte(val), server.encKey)
	if err != nil {
		return err
	}
	sig := sign(ciphertext, server.signKey)
	data := base64.StdEncoding.EncodeToString(ciphertext) + "|" + base64.StdEncoding.EncodeToString(sig)
	ctx.SetCookie(NewCookie(name, data, age))
	return nil
}

// GetSecureCookie returns the decrypted value of a cookie set with
// SetSecureCookie. The second return value is false when the cookie is
// absent, tampered with or otherwise unreadable.
func (ctx *Context) GetSecureCookie(name string) (string, bool) {
	for _, cookie := range ctx.Request.Cookies() {
		if cookie.Name != name {
			continue
		}
		parts := strings.SplitN(cookie.Value, "|", 2)
		if len(parts) != 2 {
			return "", false
		}
		ciphertext, err := base64.StdEncoding.DecodeString(parts[0])
		if err != nil {
			return "", false
		}
		sig, err := base64.StdEncoding.DecodeString(parts[1])
		if err != nil {
			return "", false
		}
		if !hmac.Equal(sign(ciphertext, ctx.Server.signKey), sig) {
			return "", false
		}
		plaintext, err := decrypt(ciphertext, ctx.Server.encKey)
		if err != nil {
			return "", false
		}
		return string(plaintext), true
	}
	return "", false
}

func genKey(password string, salt string) []byte {
	return pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, keySize, sha512.New)
}

func encrypt(plaintext []byte, key []byte) ([]byte, error) {
	aesCipher, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	ciphertext := make([]byte, aes.BlockSize+len(plaintext))
	iv := ciphertext[:aes.BlockSize]
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, err
	}
	stream := cipher.NewCTR(aesCipher, iv)
	stream.XORKeyStream(ciphertext[aes.BlockSize:], plaintext)
	return ciphertext, nil
}

func decrypt(ciphertext []byte, key []byte) ([]byte, error) {
	if len(ciphertext) <= aes.BlockSize {
		return nil, errors.New("invalid cipher text")
	}
	aesCipher, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	plaintext := make([]byte, len(ciphertext)-aes.BlockSize)
	stream := cipher.NewCTR(aesCipher, ciphertext[:aes.BlockSize])
	stream.XORKeyStream(plaintext, ciphertext[aes.BlockSize:])
	return plaintext, nil
}

func sign(data []byte, key []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}
