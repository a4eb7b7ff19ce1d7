package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

func baseURL() string {
	env := os.Getenv("ENV")
	switch env {
	case "CI":
		return "http://core-app:8080/api/v1"
	}
	return "http://localhost:8080/api/v1"
}

const tokenHeader = "X-user-token"

type GuestRequest struct {
	Name string `json:"name"`
}

type JoinRequest struct {
	Code string `json:"code"`
}

type Lobby struct {
	Room struct {
		ID     string `json:"id"`
		Code   string `json:"code"`
		Status string `json:"status"`
	} `json:"room"`
	Players []struct {
		ID string `json:"id"`
	} `json:"players"`
}

func main() {
	if err := run(&http.Client{Timeout: 30 * time.Second}); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Println("\n All E2E tests passed!")
}

func run(client *http.Client) error {
	fmt.Println("Starting E2E tests for FlowQuest API...")

	if !waitForService(client) {
		return fmt.Errorf("service is not reachable at %s", baseURL())
	}

	hostToken, err := guest(client, "host")
	if err != nil {
		return fmt.Errorf("host guest login failed: %v", err)
	}
	playerToken, err := guest(client, "player")
	if err != nil {
		return fmt.Errorf("player guest login failed: %v", err)
	}

	lobby, err := createRoom(client, hostToken)
	if err != nil {
		return fmt.Errorf("create room failed: %v", err)
	}
	fmt.Printf("Room created. Code: %s\n", lobby.Room.Code)

	joined, err := joinRoom(client, playerToken, lobby.Room.Code)
	if err != nil {
		return fmt.Errorf("join room failed: %v", err)
	}
	if len(joined.Players) != 2 {
		return fmt.Errorf("expected 2 players after join, got %d", len(joined.Players))
	}

	if err := startGame(client, hostToken, lobby.Room.ID); err != nil {
		return fmt.Errorf("start game failed: %v", err)
	}

	status, err := roomStatus(client, playerToken, lobby.Room.ID)
	if err != nil {
		return fmt.Errorf("get state failed: %v", err)
	}
	if status != "in_progress" {
		return fmt.Errorf("expected in_progress room, got %s", status)
	}
	fmt.Printf("Game is %s\n", status)
	return nil
}

func waitForService(client *http.Client) bool {
	fmt.Println(" Waiting for service to be ready...")

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		resp, err := client.Get(baseURL() + "/tiles")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				fmt.Println(" Service is ready!")
				return true
			}
		}

		if i < maxRetries-1 {
			fmt.Printf(" Service not ready yet (attempt %d/%d)...\n", i+1, maxRetries)
			time.Sleep(2 * time.Second)
		}
	}

	fmt.Println(" Service didn't start in time")
	return false
}

func guest(client *http.Client, name string) (string, error) {
	fmt.Printf("\n Step: guest login as %s...\n", name)

	resp, err := do(client, http.MethodPost, "/auth/guest", "", GuestRequest{Name: name})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := expect(resp, http.StatusCreated); err != nil {
		return "", err
	}

	token := resp.Header.Get(tokenHeader)
	if token == "" {
		return "", fmt.Errorf("user token not found in response headers")
	}
	return token, nil
}

func createRoom(client *http.Client, token string) (Lobby, error) {
	fmt.Println("\n Step: creating room...")
	return lobbyCall(client, "/rooms", token, nil, http.StatusCreated)
}

func joinRoom(client *http.Client, token, code string) (Lobby, error) {
	fmt.Println("\n Step: joining room...")
	return lobbyCall(client, "/rooms/join", token, JoinRequest{Code: code}, http.StatusOK)
}

func startGame(client *http.Client, token, roomID string) error {
	fmt.Println("\n Step: starting game...")

	resp, err := do(client, http.MethodPost, "/rooms/"+roomID+"/start", token, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return expect(resp, http.StatusOK)
}

func roomStatus(client *http.Client, token, roomID string) (string, error) {
	fmt.Println("\n Step: reading game state...")

	var state Lobby
	resp, err := do(client, http.MethodGet, "/rooms/"+roomID+"/state", token, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if err := expect(resp, http.StatusOK); err != nil {
		return "", err
	}
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		return "", fmt.Errorf("failed to parse state response: %v", err)
	}
	return state.Room.Status, nil
}

func lobbyCall(client *http.Client, path, token string, body any, want int) (Lobby, error) {
	var lobby Lobby
	resp, err := do(client, http.MethodPost, path, token, body)
	if err != nil {
		return lobby, err
	}
	defer resp.Body.Close()
	if err := expect(resp, want); err != nil {
		return lobby, err
	}
	if err := json.NewDecoder(resp.Body).Decode(&lobby); err != nil {
		return lobby, fmt.Errorf("failed to parse lobby response: %v", err)
	}
	return lobby, nil
}

func do(client *http.Client, method, path, token string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, baseURL()+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(tokenHeader, token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %v", method, path, err)
	}
	return resp, nil
}

func expect(resp *http.Response, want int) error {
	if resp.StatusCode != want {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s returned status %d: %s", resp.Request.URL.Path, resp.StatusCode, string(body))
	}
	return nil
}
