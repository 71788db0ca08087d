package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

const (
	defaultBaseURL = "http://localhost:8080"

	phoneNumber = "15555555555"
	address     = "北京市朝阳区"
)

type JWTResponse struct {
	Token string `json:"token"`
	Type  string `json:"type"`
}

type HashResponse struct {
	Purpose string `json:"purpose"`
	Digest  string `json:"digest"`
}

func main() {
	fmt.Println("🚀 Starting hashing smoke test...")

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	// Step 1: Get JWT token
	token, err := getJWTToken(baseURL, os.Getenv("API_KEY"), os.Getenv("API_SECRET"))
	if err != nil {
		log.Fatalf("Failed to get JWT token: %v", err)
	}
	fmt.Println("✅ JWT token obtained")

	// Step 2: Hash the reference inputs
	phoneHash, err := hashValue(baseURL, token, "phone", phoneNumber)
	if err != nil {
		log.Fatalf("Failed to hash phone number: %v", err)
	}
	addressHash, err := hashValue(baseURL, token, "address", address)
	if err != nil {
		log.Fatalf("Failed to hash address: %v", err)
	}

	fmt.Printf("hash_phone_number: %s\n", phoneHash.Digest)
	fmt.Printf("hash_address: %s\n", addressHash.Digest)
	fmt.Println("✅ Hashing smoke test completed successfully!")
}

func getJWTToken(baseURL, apiKey, apiSecret string) (string, error) {
	url := fmt.Sprintf("%s/api/v1/auth/token", baseURL)

	req, err := http.NewRequest(http.MethodPost, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-API-Key", apiKey)
	req.Header.Set("X-API-Secret", apiSecret)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("auth failed with status %d: %s", resp.StatusCode, string(body))
	}

	var jwtResp JWTResponse
	if err := json.Unmarshal(body, &jwtResp); err != nil {
		return "", fmt.Errorf("malformed token response: %w", err)
	}
	if jwtResp.Token == "" {
		return "", fmt.Errorf("token not found in response: %s", string(body))
	}
	return jwtResp.Token, nil
}

func hashValue(baseURL, token, kind, value string) (*HashResponse, error) {
	payload, err := json.Marshal(map[string]string{"value": value})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/hash/%s", baseURL, kind)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	startTime := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()
	fmt.Printf("⏱️  %s request completed in %v\n", kind, time.Since(startTime))

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hashing failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var hashResp HashResponse
	if err := json.Unmarshal(respBody, &hashResp); err != nil {
		return nil, fmt.Errorf("malformed hash response: %w", err)
	}
	return &hashResp, nil
}
