package util

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"classroom-sync/biz/infrastructure/config"
	"classroom-sync/biz/infrastructure/consts"
	"classroom-sync/biz/infrastructure/util/log"
)

var client *HttpClient

// HttpClient 是一个简单的 HTTP 客户端，对接中台的对象存储加签接口
type HttpClient struct {
	Client *http.Client
	Config *config.Config
}

// NewHttpClient 创建一个新的 HttpClient 实例
func NewHttpClient() *HttpClient {
	return &HttpClient{
		Client: &http.Client{},
	}
}

func GetHttpClient() *HttpClient {
	if client == nil {
		client = NewHttpClient()
	}
	return client
}

// SendRequest 发送 HTTP 请求
func (c *HttpClient) SendRequest(ctx context.Context, method, url string, headers map[string]string, body interface{}) (map[string]interface{}, error) {
	// 将 body 序列化为 JSON
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("请求体序列化失败: %w", err)
	}

	// 创建新的请求
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}

	// 设置请求头
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	// 发送请求
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("发送请求失败: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Error("关闭请求失败: %v", closeErr)
		}
	}()

	// 读取响应
	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应失败: %w", err)
	}

	// 检查响应状态码
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code: %d, response body: %s", resp.StatusCode, responseBody)
	}

	// 反序列化响应体
	var responseMap map[string]interface{}
	if err := json.Unmarshal(responseBody, &responseMap); err != nil {
		return nil, fmt.Errorf("反序列化响应失败: %w", err)
	}

	return responseMap, nil
}

func (c *HttpClient) GenCosSts(ctx context.Context, path string) (map[string]any, error) {
	body := make(map[string]any)
	body["path"] = path

	header := make(map[string]string)
	header["Content-Type"] = consts.ContentTypeJson
	if config.GetConfig().State == "test" {
		header["X-Xh-Env"] = "test"
	}

	URL := config.GetConfig().Api.PlatformURL + "/sts/gen_cos_sts"
	resp, err := c.SendRequest(ctx, consts.Post, URL, header, body)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *HttpClient) GenSignedUrl(ctx context.Context, secretId, secretKey string, method string, path string) (map[string]any, error) {
	body := make(map[string]any)
	body["secretId"] = secretId
	body["secretKey"] = secretKey
	body["method"] = method
	body["path"] = path

	header := make(map[string]string)
	header["Content-Type"] = consts.ContentTypeJson
	if config.GetConfig().State == "test" {
		header["X-Xh-Env"] = "test"
	}

	URL := config.GetConfig().Api.PlatformURL + "/sts/gen_signed_url"
	resp, err := c.SendRequest(ctx, consts.Post, URL, header, body)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
