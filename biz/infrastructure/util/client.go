package util

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"assignment-hub/biz/infrastructure/config"
	"assignment-hub/biz/infrastructure/consts"
	"assignment-hub/biz/infrastructure/util/log"

	"github.com/mitchellh/mapstructure"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var client *HttpClient

// INotifyClient 复核完成后给学生推送消息
type INotifyClient interface {
	SendReviewNotice(ctx context.Context, studentID, assignmentTitle string) error
}

// HttpClient 是一个简单的 HTTP 客户端
type HttpClient struct {
	Client *http.Client
	Config *config.Config
}

// NewHttpClient 创建一个新的 HttpClient 实例
func NewHttpClient(config *config.Config) *HttpClient {
	return &HttpClient{
		Client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		Config: config,
	}
}

func GetHttpClient() *HttpClient {
	if client == nil {
		client = NewHttpClient(config.GetConfig())
	}
	return client
}

type notifyResult struct {
	Code    float64 `mapstructure:"code"`
	Message string  `mapstructure:"message"`
}

// SendReviewNotice 推送"作业已复核"消息，失败只记日志，不影响主流程
func (c *HttpClient) SendReviewNotice(ctx context.Context, studentID, assignmentTitle string) error {
	body := map[string]any{
		"userId":  studentID,
		"type":    "assignment_reviewed",
		"content": fmt.Sprintf("你的作业《%s》已被老师复核", assignmentTitle),
	}

	data, err := c.SendRequest(ctx, consts.Post, c.Config.Api.NotifyURL, nil, body)
	if err != nil {
		return err
	}

	var result notifyResult
	if err := mapstructure.Decode(data, &result); err != nil {
		return fmt.Errorf("decode notify response failed: %w", err)
	}
	if result.Code != 0 {
		return fmt.Errorf("notify platform returned code %v: %s", result.Code, result.Message)
	}
	return nil
}

// SendRequest 发送 HTTP 请求
func (c *HttpClient) SendRequest(ctx context.Context, method, url string, headers map[string]string, body interface{}) (map[string]interface{}, error) {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

	req.Header.Set("Content-Type", consts.ContentTypeJson)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Error("close response body failed: %v", closeErr)
		}
	}()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code: %d, response body: %s", resp.StatusCode, responseBody)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(responseBody, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response failed: %w", err)
	}
	return result, nil
}
