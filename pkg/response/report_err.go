package response

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"

	"directory-api/pkg/discord"

	"github.com/gin-gonic/gin"
)

// redactedHeaders are never forwarded to Discord.
var redactedHeaders = map[string]bool{
	"Authorization": true,
	"Cookie":        true,
}

// sendDiscordMessageAsync sends Discord messages asynchronously.
func sendDiscordMessageAsync(c *gin.Context, d discord.IDiscord, message string) {
	if d == nil || message == "" {
		return
	}
	go func() {
		for _, msg := range splitMessageForDiscord(message) {
			if err := d.ReportBug(context.Background(), msg); err != nil {
				// Standard log as fallback since we're in an async goroutine
				log.Printf("pkg.response.sendDiscordMessageAsync.ReportBug: %v\n", err)
			}
		}
	}()
}

// splitMessageForDiscord splits a message into chunks that fit Discord's message length limits.
func splitMessageForDiscord(message string) []string {
	var chunks []string
	var current string
	for _, line := range strings.Split(message, "\n") {
		line += "\n"
		if len(current)+len(line) > DiscordMaxMessageLen {
			if current != "" {
				chunks = append(chunks, strings.TrimSuffix(current, "\n"))
				current = ""
			}
			for len(line) > DiscordMaxMessageLen {
				chunks = append(chunks, line[:DiscordMaxMessageLen])
				line = line[DiscordMaxMessageLen:]
			}
		}
		current += line
	}
	if current != "" {
		chunks = append(chunks, strings.TrimSuffix(current, "\n"))
	}
	return chunks
}

// requestBody returns the body cached by ShouldBindBodyWith, or reads and restores the raw body.
func requestBody(c *gin.Context) []byte {
	if cached, ok := c.Get(gin.BodyBytesKey); ok {
		if b, ok := cached.([]byte); ok {
			return b
		}
	}
	if c.Request.Body == nil {
		return nil
	}
	bodyBytes, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	return bodyBytes
}

// buildInternalServerErrorDataForReportBug builds a formatted error report for Discord.
func buildInternalServerErrorDataForReportBug(c *gin.Context, errString string, backtrace []string) string {
	bodyBytes := requestBody(c)
	params := c.Request.URL.Query().Encode()

	var sb strings.Builder
	sb.WriteString("============= DIRECTORY API ERROR =============\n")
	sb.WriteString(fmt.Sprintf("Route   : %s\n", c.Request.URL.Path))
	sb.WriteString(fmt.Sprintf("Method  : %s\n", c.Request.Method))
	sb.WriteString("-----------------------------------------------\n")

	if len(c.Request.Header) > 0 {
		keys := make([]string, 0, len(c.Request.Header))
		for key := range c.Request.Header {
			if !redactedHeaders[key] {
				keys = append(keys, key)
			}
		}
		sort.Strings(keys)
		sb.WriteString("Headers :\n")
		for _, key := range keys {
			sb.WriteString(fmt.Sprintf("    %s: %s\n", key, strings.Join(c.Request.Header[key], ", ")))
		}
		sb.WriteString("-----------------------------------------------\n")
	}

	if params != "" {
		sb.WriteString(fmt.Sprintf("Params  : %s\n", params))
	}

	if len(bodyBytes) > 0 {
		sb.WriteString("Body    :\n")
		var prettyBody bytes.Buffer
		if err := json.Indent(&prettyBody, bodyBytes, "    ", "  "); err == nil {
			sb.WriteString(prettyBody.String() + "\n")
		} else {
			sb.WriteString("    " + string(bodyBytes) + "\n")
		}
		sb.WriteString("-----------------------------------------------\n")
	}

	sb.WriteString(fmt.Sprintf("Error   : %s\n", errString))

	if len(backtrace) > 0 {
		sb.WriteString("\nBacktrace:\n")
		for i, line := range backtrace {
			sb.WriteString(fmt.Sprintf("[%d]: %s\n", i, line))
		}
	}

	sb.WriteString("===============================================\n")
	return sb.String()
}
