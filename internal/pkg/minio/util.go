package minio

import (
	"Lumen/internal/api/config"
	"fmt"
	"strings"
)

// ResolveURL 把存储的对象名解析为可访问 URL；
// 历史数据里可能已经是完整 URL，原样透传
func ResolveURL(objectName string) string {
	if objectName == "" {
		return objectName
	}
	if strings.HasPrefix(objectName, "http://") || strings.HasPrefix(objectName, "https://") {
		return objectName
	}
	if config.Cfg == nil || config.Cfg.MinIO.Endpoint == "" {
		return objectName
	}

	cfg := config.Cfg.MinIO
	protocol := "http"
	if cfg.UseSSL {
		protocol = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", protocol, cfg.Endpoint, cfg.MainBucket, objectName)
}
