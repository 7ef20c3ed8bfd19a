// Package chat implements the interactive conversation command.
package chat

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"fjacquet/ai-wallet/cmd/root"
	"fjacquet/ai-wallet/internal/chat"

	"github.com/spf13/cobra"
)

// Cmd represents the chat command
var Cmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the finance assistant",
	Long: `Start an interactive session. Each line is classified for financial
actions (expenses, income, subscriptions) and applied to the ledger; with
AI enabled the message is also answered by the model.`,
	Run: chatFunc,
}

func chatFunc(cmd *cobra.Command, args []string) {
	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("%v", err)
	}

	cls, err := root.NewClassifier(l)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}

	ctx := context.Background()

	var ai chat.AIClient
	if root.Cfg.AI.Enabled {
		client, err := chat.NewGeminiClient(ctx, root.Cfg.AI.APIKey, root.Cfg.AI.Model)
		if err != nil {
			root.Log.Warnf("AI disabled: %v", err)
		} else {
			defer func() {
				if err := client.Close(); err != nil {
					root.Log.Warnf("Failed to close AI client: %v", err)
				}
			}()
			ai = client
		}
	}

	service := chat.NewService(cls, l, ai)

	fmt.Println("ai-wallet готов. Пишите сообщения, 'exit' для выхода.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		resp, err := service.SendMessage(ctx, line)
		if err != nil {
			root.Log.Errorf("Error handling message: %v", err)
			continue
		}
		fmt.Println(resp.Message)
		if len(resp.Snippets) > 0 {
			fmt.Printf("[%d widget(s) generated]\n", len(resp.Snippets))
		}
	}
}
