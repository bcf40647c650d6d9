package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const (
	baseURL    = "http://localhost:9000/storefront/demo-store/payments/momo/request-to-pay/"
	fixedRefID = "2d3f1c9a-8f44-4c47-9a55-4f2f3f0a7b10"
)

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomRefID() string {
	chars := []rune("abcdef0123456789")
	id := make([]rune, 32)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return string(id)
}

func doRequest() {
	id := fixedRefID
	if rand.Intn(5) == 0 {
		id = randomRefID()
	}

	url := baseURL + id
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("request failed:", err)
	} else {
		fmt.Println("GET", url, "->", resp.Status)
		resp.Body.Close()
	}
}
