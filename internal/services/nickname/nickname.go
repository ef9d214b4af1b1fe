package nickname

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/MyelinBots/checkinbot-go/config"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// The profile endpoint answers with a JSONP-style blob, GB2312 encoded:
// portraitCallBack({"<id>":[...,nickname,...]})
const callbackPrefixLen = len("portraitCallBack(")

// Fetcher resolves a user id to a display nickname.
type Fetcher interface {
	Nickname(ctx context.Context, userID string) (string, error)
}

type FetcherImpl struct {
	client  *http.Client
	baseURL string
}

func NewFetcher(cfg config.NicknameConfig) Fetcher {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &FetcherImpl{
		client:  &http.Client{Timeout: timeout},
		baseURL: cfg.BaseURL,
	}
}

func (f *FetcherImpl) Nickname(ctx context.Context, userID string) (string, error) {
	reqURL := f.baseURL + "?uins=" + url.QueryEscape(userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "multipart/form-data;")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(body)
	if err != nil {
		return "", fmt.Errorf("decode profile response: %w", err)
	}

	if len(decoded) < callbackPrefixLen+1 {
		return "", fmt.Errorf("profile response too short: %d bytes", len(decoded))
	}
	payload := decoded[callbackPrefixLen : len(decoded)-1]

	var parsed map[string][]interface{}
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return "", fmt.Errorf("parse profile response: %w", err)
	}

	values, ok := parsed[userID]
	if !ok || len(values) < 7 {
		return "", fmt.Errorf("no profile entry for %s", userID)
	}
	nick, ok := values[6].(string)
	if !ok {
		return "", fmt.Errorf("unexpected nickname field for %s", userID)
	}
	return nick, nil
}
