package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fjacquet/ai-wallet/internal/classifier"
	"fjacquet/ai-wallet/internal/ledger"
	"fjacquet/ai-wallet/internal/models"
	"fjacquet/ai-wallet/internal/report"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// systemPrompt frames the assistant's role. Widgets are self-contained
// React components the surrounding UI executes in a sandbox.
const systemPrompt = `Ты персональный финансовый ассистент, который помогает пользователю управлять его финансами.

ТВОЯ РОЛЬ:
- Помогать вести учет доходов и расходов
- Отслеживать регулярные платежи
- Показывать баланс и статистику
- Создавать бюджеты и анализировать траты
- Генерировать интерактивные виджеты для визуализации данных

ПРАВИЛА СОЗДАНИЯ ВИДЖЕТОВ:
- Используй React hooks БЕЗ импортов (useState, useEffect доступны глобально)
- Создавай функциональные компоненты: function ComponentName() {...}
- НЕ используй import statements
- Данные доступны как глобальные переменные: balance, transactions, recurringPayments, budgets, summary, categorySpending

ФОРМАТ ОТВЕТА:
Сначала ответь пользователю текстом, затем если нужен виджет, добавь его в блоке ` + "```jsx ... ```" + `.`

// errorReply is returned in place of a model answer when the provider
// fails. The ledger mutation, if any, has already been applied.
const errorReply = "Извините, произошла ошибка при обработке вашего сообщения."

// noMatchReply is the offline answer for messages with no financial action.
const noMatchReply = "Не распознал финансовое действие. Попробуйте, например: «потратил 500 рублей на продукты»."

// message is one turn of the conversation history.
type message struct {
	role    string
	content string
}

// Response is what the chat surface renders for one user message.
type Response struct {
	Message  string
	Snippets []Snippet
	Action   classifier.Result
}

// Service ties the classifier, the ledger and the model provider together.
// Mutation-triggering calls must be serialized per session; Service does
// not accept overlapping SendMessage calls for the same instance.
type Service struct {
	classifier *classifier.Classifier
	ledger     *ledger.Ledger
	ai         AIClient
	history    []message
}

// NewService creates a chat service. ai may be nil, in which case replies
// are limited to classifier confirmations.
func NewService(c *classifier.Classifier, l *ledger.Ledger, ai AIClient) *Service {
	return &Service{classifier: c, ledger: l, ai: ai}
}

// SendMessage classifies the text, applies any resulting ledger mutation,
// and then asks the model for a reply with the fresh financial snapshot
// embedded as context. Classifier misses fall through to a plain
// conversational turn. A model failure yields a generic error reply; the
// ledger is never rolled back for collaborator failures.
func (s *Service) SendMessage(ctx context.Context, text string) (Response, error) {
	action, err := s.classifier.Classify(text)
	if err != nil {
		return Response{}, fmt.Errorf("error applying financial action: %w", err)
	}

	if s.ai == nil {
		reply := action.Message
		if !action.Matched() {
			reply = noMatchReply
		}
		return Response{Message: reply, Action: action}, nil
	}

	contextMessage := text
	if action.Matched() {
		contextMessage += "\n\nВыполнено действие: " + action.Message
	}
	s.history = append(s.history, message{role: "user", content: contextMessage + "\n\n" + s.financeContext()})

	reply, err := s.ai.Generate(ctx, s.prompt())
	if err != nil {
		log.WithError(err).Error("Model call failed")
		return Response{Message: errorReply, Action: action}, nil
	}
	s.history = append(s.history, message{role: "assistant", content: reply})

	replyText, snippets := ParseResponse(reply)
	return Response{Message: replyText, Snippets: snippets, Action: action}, nil
}

// ClearHistory drops the conversation, keeping only the system framing.
func (s *Service) ClearHistory() {
	s.history = nil
}

// prompt flattens the system framing and the conversation into a single
// prompt string for the model.
func (s *Service) prompt() string {
	var b strings.Builder
	b.WriteString(systemPrompt)
	for _, m := range s.history {
		b.WriteString("\n\n")
		b.WriteString(m.role)
		b.WriteString(": ")
		b.WriteString(m.content)
	}
	return b.String()
}

// financeContext renders the current financial state for the model.
func (s *Service) financeContext() string {
	snapshot := report.Summary(s.ledger, time.Now())
	spending := report.SpendingByCategory(s.ledger.GetTransactions(0), time.Now(), models.PeriodMonth)

	recent, _ := json.MarshalIndent(s.ledger.GetTransactions(3), "", "  ")
	byCategory, _ := json.MarshalIndent(spending, "", "  ")

	return fmt.Sprintf(`Текущие финансовые данные:
- Баланс: %s₽
- Последние транзакции: %s
- Траты за месяц по категориям: %s
- Регулярные платежи: %d`,
		snapshot.Balance, recent, byCategory, len(s.ledger.GetRecurringPayments()))
}
