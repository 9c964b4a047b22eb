// Command client is a small example consumer of the weather API.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the weather service")
	city := flag.String("city", "London", "City to fetch a forecast for")
	offline := flag.Bool("offline", false, "Enable offline mode before fetching")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	if *offline {
		resp, err := client.Post(
			fmt.Sprintf("%s/api/v1/weather/offline-mode?enabled=true", *baseURL), "", nil)
		if err != nil {
			log.Fatalf("Failed to enable offline mode: %v", err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		fmt.Printf("offline-mode: %s\n", body)
	}

	resp, err := client.Get(fmt.Sprintf("%s/api/v1/weather/forecast?city=%s",
		*baseURL, url.QueryEscape(*city)))
	if err != nil {
		log.Fatalf("Failed to fetch forecast: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("Failed to read response: %v", err)
	}

	fmt.Printf("status: %d\n%s\n", resp.StatusCode, body)
}
