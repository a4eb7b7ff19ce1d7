package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

type Lobby struct {
	Room struct {
		ID   string `json:"id"`
		Code string `json:"code"`
	} `json:"room"`
	Player struct {
		ID string `json:"id"`
	} `json:"player"`
	Players []json.RawMessage `json:"players"`
}

type Question struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Options   []string `json:"options"`
	TimeLimit int      `json:"time_limit"`
}

type MoveResponse struct {
	Distance int       `json:"distance"`
	Question *Question `json:"question"`
}

type AnswerRequest struct {
	PlayerID  string  `json:"player_id"`
	Answer    string  `json:"answer"`
	TimeTaken float64 `json:"time_taken"`
}

type AnswerResponse struct {
	IsCorrect     bool   `json:"is_correct"`
	Points        int    `json:"points"`
	Rank          int    `json:"rank"`
	CorrectAnswer string `json:"correct_answer"`
}

type WSEvent struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type Client struct {
	baseURL    string
	userToken  string
	roomID     string
	playerID   string
	question   *Question
	asked      time.Time
	httpClient *http.Client
	wsConn     *websocket.Conn
	wsDone     chan struct{}
	scanner    *bufio.Scanner
}

func NewClient(baseURL string, scanner *bufio.Scanner) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		scanner:    scanner,
	}
}

func (c *Client) prompt(label string) string {
	fmt.Print(label)
	if !c.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(c.scanner.Text())
}

func (c *Client) call(method, path string, body any, want int, out any) (*http.Response, error) {
	var reader io.Reader
	if raw, ok := body.([]byte); ok {
		reader = bytes.NewReader(raw)
	} else if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userToken != "" {
		req.Header.Set("X-user-token", c.userToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		raw, _ := io.ReadAll(resp.Body)
		return resp, fmt.Errorf("сервер вернул %d: %s", resp.StatusCode, string(raw))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp, fmt.Errorf("не удалось разобрать ответ: %v", err)
		}
	}
	return resp, nil
}

func (c *Client) Login() error {
	name := c.prompt("Имя игрока: ")
	resp, err := c.call(http.MethodPost, "/auth/guest", map[string]string{"name": name}, http.StatusCreated, nil)
	if err != nil {
		return err
	}
	c.userToken = resp.Header.Get("X-user-token")
	fmt.Println("Вход выполнен")
	return nil
}

func (c *Client) CreateRoom() error {
	var lobby Lobby
	if _, err := c.call(http.MethodPost, "/rooms", nil, http.StatusCreated, &lobby); err != nil {
		return err
	}
	fmt.Printf("Комната создана. Код: %s\n", lobby.Room.Code)
	return c.enter(lobby)
}

func (c *Client) JoinRoom() error {
	code := c.prompt("Код комнаты: ")
	var lobby Lobby
	if _, err := c.call(http.MethodPost, "/rooms/join", map[string]string{"code": code}, http.StatusOK, &lobby); err != nil {
		return err
	}
	fmt.Printf("Вы в комнате, игроков: %d\n", len(lobby.Players))
	return c.enter(lobby)
}

func (c *Client) enter(lobby Lobby) error {
	c.roomID = lobby.Room.ID
	c.playerID = lobby.Player.ID
	return c.connectWebSocket()
}

func (c *Client) StartGame() error {
	_, err := c.call(http.MethodPost, "/rooms/"+c.roomID+"/start", nil, http.StatusOK, nil)
	return err
}

// Move sends the scanned QR payload of a tile, for example
// {"position":5,"type":"question"}.
func (c *Client) Move() error {
	payload := c.prompt("Данные QR-кода клетки: ")
	var res MoveResponse
	if _, err := c.call(http.MethodPost, "/players/"+c.playerID+"/moves", []byte(payload), http.StatusOK, &res); err != nil {
		return err
	}
	fmt.Printf("Ход на %d клеток\n", res.Distance)
	if res.Question != nil {
		c.showQuestion(res.Question)
	}
	return nil
}

func (c *Client) showQuestion(q *Question) {
	c.question = q
	c.asked = time.Now()
	fmt.Printf("\nВопрос (%d с): %s\n", q.TimeLimit, q.Text)
	for i, opt := range q.Options {
		fmt.Printf("  %d. %s\n", i+1, opt)
	}
}

func (c *Client) Answer() error {
	if c.question == nil {
		return fmt.Errorf("нет открытого вопроса")
	}
	answer := c.prompt("Ответ (номер или текст): ")
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(c.question.Options) {
		answer = c.question.Options[n-1]
	}

	var res AnswerResponse
	_, err := c.call(http.MethodPost, "/questions/"+c.question.ID+"/answers", AnswerRequest{
		PlayerID:  c.playerID,
		Answer:    answer,
		TimeTaken: time.Since(c.asked).Seconds(),
	}, http.StatusOK, &res)
	if err != nil {
		return err
	}
	if res.IsCorrect {
		fmt.Printf("Верно! +%d очков, место %d\n", res.Points, res.Rank)
	} else {
		fmt.Printf("Неверно, правильный ответ: %s\n", res.CorrectAnswer)
	}
	c.question = nil
	return nil
}

func (c *Client) State() error {
	var state json.RawMessage
	if _, err := c.call(http.MethodGet, "/rooms/"+c.roomID+"/state", nil, http.StatusOK, &state); err != nil {
		return err
	}
	var pretty bytes.Buffer
	_ = json.Indent(&pretty, state, "", "  ")
	fmt.Println(pretty.String())
	return nil
}

func (c *Client) connectWebSocket() error {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %v", err)
	}

	scheme := "ws"
	if base.Scheme == "https" {
		scheme = "wss"
	}
	u := url.URL{
		Scheme:   scheme,
		Host:     base.Host,
		Path:     base.Path + "/ws/rooms/" + c.roomID,
		RawQuery: url.Values{"token": {c.userToken}}.Encode(),
	}

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return fmt.Errorf("websocket connection failed: %v", err)
	}

	c.wsConn = conn
	c.wsDone = make(chan struct{})
	go c.listenWebSocket()
	return nil
}

func (c *Client) listenWebSocket() {
	defer close(c.wsDone)

	for {
		var event WSEvent
		if err := c.wsConn.ReadJSON(&event); err != nil {
			fmt.Printf("WebSocket error: %v\n", err)
			return
		}

		switch event.Type {
		case "LOBBY_UPDATE":
			fmt.Println("\nОбновление лобби")
		case "GAME_STARTED":
			fmt.Println("\nИгра началась!")
		case "QUESTION_ASKED":
			var q Question
			if err := json.Unmarshal(event.Payload, &q); err == nil && q.ID != "" {
				c.showQuestion(&q)
			}
		case "TURN_ADVANCED":
			fmt.Println("\nХод переходит следующему игроку")
		case "GAME_COMPLETED":
			fmt.Println("\nИгра окончена! Посмотрите состояние, чтобы увидеть итоги")
		default:
			fmt.Printf("\nСобытие %s\n", event.Type)
		}
	}
}

func (c *Client) Close() {
	if c.wsConn != nil {
		c.wsConn.Close()
		<-c.wsDone
	}
}

func main() {
	baseURL := os.Getenv("FLOWQUEST_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080/api/v1"
	}

	client := NewClient(baseURL, bufio.NewScanner(os.Stdin))
	defer client.Close()

	actions := map[string]func() error{
		"1": client.Login,
		"2": client.CreateRoom,
		"3": client.JoinRoom,
		"4": client.StartGame,
		"5": client.Move,
		"6": client.Answer,
		"7": client.State,
	}

	for {
		fmt.Println("\n=== FlowQuest Console Client ===")
		fmt.Println("1. Войти как гость")
		fmt.Println("2. Создать комнату")
		fmt.Println("3. Войти в комнату")
		fmt.Println("4. Начать игру")
		fmt.Println("5. Сделать ход")
		fmt.Println("6. Ответить на вопрос")
		fmt.Println("7. Состояние игры")
		fmt.Println("0. Выход")

		fmt.Print("Выберите действие: ")
		if !client.scanner.Scan() {
			return
		}
		input := strings.TrimSpace(client.scanner.Text())
		if input == "0" {
			fmt.Println("До свидания!")
			return
		}

		action, ok := actions[input]
		if !ok {
			fmt.Println("Неверный выбор")
			continue
		}
		if err := action(); err != nil {
			fmt.Printf("Ошибка: %v\n", err)
		}
	}
}
