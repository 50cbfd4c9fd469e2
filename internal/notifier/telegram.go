package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const telegramAPIBase = "https://api.telegram.org/bot"

// CommandHandler produces the reply text for a bot command. An empty
// return means no reply is sent.
type CommandHandler func(command string) string

// TelegramNotifier delivers signal reports to one configured chat and
// answers bot commands arriving from that same chat. Commands from any
// other chat are ignored.
type TelegramNotifier struct {
	botToken string
	chatID   string
	apiBase  string
	client   *http.Client
}

// NewTelegramNotifier builds a notifier bound to a single chat,
// routing requests through proxyURL when one is given.
func NewTelegramNotifier(botToken, chatID, proxyURL string) *TelegramNotifier {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &TelegramNotifier{
		botToken: botToken,
		chatID:   chatID,
		apiBase:  telegramAPIBase,
		client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

// Send posts one HTML-formatted message to the configured chat. Link
// previews are disabled so report lines stay compact.
func (t *TelegramNotifier) Send(ctx context.Context, text string) error {
	payload, err := json.Marshal(sendMessageRequest{
		ChatID:                t.chatID,
		Text:                  text,
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
	})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	apiURL := t.apiBase + t.botToken + "/sendMessage"
	req, err := http.NewRequestWithContext(ctx, "POST", apiURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("post message: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram sendMessage: status %d, body: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

// SendWithRetry retries Send with exponential backoff. It returns
// right after the last failed attempt instead of sleeping again.
func (t *TelegramNotifier) SendWithRetry(ctx context.Context, text string, maxRetries int) error {
	var lastErr error
	for i := 0; i <= maxRetries; i++ {
		lastErr = t.Send(ctx, text)
		if lastErr == nil {
			return nil
		}
		if i == maxRetries {
			break
		}
		backoff := time.Duration(1<<uint(i)) * time.Second
		log.Printf("[WARN] Telegram delivery failed (attempt %d/%d): %v, next try in %v", i+1, maxRetries+1, lastErr, backoff)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return fmt.Errorf("gave up after %d attempts: %w", maxRetries+1, lastErr)
}

type update struct {
	UpdateID int `json:"update_id"`
	Message  *struct {
		Text string `json:"text"`
		Chat struct {
			ID int64 `json:"id"`
		} `json:"chat"`
	} `json:"message"`
}

type getUpdatesResponse struct {
	OK     bool     `json:"ok"`
	Result []update `json:"result"`
}

// StartPolling long-polls getUpdates and dispatches commands from the
// configured chat to handler. It blocks until ctx is cancelled.
func (t *TelegramNotifier) StartPolling(ctx context.Context, handler CommandHandler) {
	offset := 0
	poller := &http.Client{Timeout: 35 * time.Second}

	for {
		select {
		case <-ctx.Done():
			log.Println("[INFO] command polling stopped")
			return
		default:
		}

		updates, err := t.fetchUpdates(ctx, poller, offset)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[WARN] poll updates: %v", err)
			time.Sleep(5 * time.Second)
			continue
		}

		for _, u := range updates {
			offset = u.UpdateID + 1
			if u.Message == nil || u.Message.Text == "" {
				continue
			}
			from := strconv.FormatInt(u.Message.Chat.ID, 10)
			if from != t.chatID {
				log.Printf("[WARN] dropping command from unrecognized chat %s", from)
				continue
			}
			cmd := strings.TrimSpace(u.Message.Text)
			log.Printf("[INFO] command from chat %s: %s", from, cmd)
			if reply := handler(cmd); reply != "" {
				if err := t.Send(ctx, reply); err != nil {
					log.Printf("[ERROR] send command reply: %v", err)
				}
			}
		}
	}
}

func (t *TelegramNotifier) fetchUpdates(ctx context.Context, poller *http.Client, offset int) ([]update, error) {
	apiURL := fmt.Sprintf("%s%s/getUpdates?offset=%d&timeout=30", t.apiBase, t.botToken, offset)
	req, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := poller.Do(req)
	if err != nil {
		return nil, err
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	var parsed getUpdatesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode updates: %w", err)
	}
	return parsed.Result, nil
}
