package main

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hash"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const baseURL = "http://localhost:9000"

var (
	paystackSecret = envOr("PAYSTACK_SECRET_KEY", "sk_test_secret")
	whatsappSecret = envOr("WHATSAPP_APP_SECRET", "wa_test_secret")
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func randomOrderNumber() string {
	return fmt.Sprintf("ORD-%04d", rand.Intn(50)+1)
}

func paystackBody() []byte {
	payload := map[string]any{
		"event": "charge.success",
		"data": map[string]any{
			"reference": fmt.Sprintf("ps_%d", rand.Intn(999999)),
			"amount":    int64(rand.Intn(50000) + 1000),
			"currency":  "UGX",
			"metadata": map[string]any{
				"order_id":  fmt.Sprintf("ord_%d", rand.Intn(50)+1),
				"tenant_id": "tenant-demo",
			},
		},
	}
	data, _ := json.Marshal(payload)
	return data
}

func whatsappBody() []byte {
	commands := []string{"accept", "decline", "ready", "out for delivery"}
	text := commands[rand.Intn(len(commands))]
	if rand.Intn(2) == 0 {
		text = text + " " + randomOrderNumber()
	}
	payload := map[string]any{
		"entry": []map[string]any{{
			"changes": []map[string]any{{
				"value": map[string]any{
					"messages": []map[string]any{{
						"from": fmt.Sprintf("25678%07d", rand.Intn(9999999)),
						"type": "text",
						"text": map[string]any{"body": text},
					}},
				},
			}},
		}},
	}
	data, _ := json.Marshal(payload)
	return data
}

func sign(body []byte, secret string, newHash func() hash.Hash) string {
	mac := hmac.New(newHash, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func post(path string, body []byte, header, signature string) {
	req, _ := http.NewRequest(http.MethodPost, baseURL+path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(header, signature)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Println("request failed:", err)
		return
	}
	resp.Body.Close()
	log.Println("POST", path, "->", resp.Status)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			if rand.Intn(2) == 0 {
				body := paystackBody()
				post("/webhooks/paystack", body, "X-Paystack-Signature", sign(body, paystackSecret, sha512.New))
			} else {
				body := whatsappBody()
				post("/webhooks/whatsapp", body, "X-Hub-Signature-256", "sha256="+sign(body, whatsappSecret, sha256.New))
			}
		case <-ctx.Done():
			return
		}
	}
}
