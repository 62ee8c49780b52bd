package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cucumber/godog"

	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
	"github.com/Avaria395/SmartExpenseTracker/internal/integration/entrypoint/dto"
	"github.com/Avaria395/SmartExpenseTracker/internal/integration/persistence"
	"github.com/Avaria395/SmartExpenseTracker/internal/integration/persistence/model"
)

// substitute replaces {name} placeholders with IDs captured by earlier
// steps, so feature files can reference generated UUIDs.
func (t *testContext) substitute(s string) string {
	for name, id := range t.ids {
		s = strings.ReplaceAll(s, "{"+name+"}", id)
	}
	return s
}

func (t *testContext) theAPIServerIsRunning() error {
	if t.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func (t *testContext) aBookNamedExists(name string) error {
	book := entity.NewBook(name, true)
	if err := persistence.NewBookRepository(t.db.DbConn).Create(context.Background(), book); err != nil {
		return err
	}
	t.ids["bookId"] = book.ID.String()
	return nil
}

func (t *testContext) anExpenseCategoryNamedExists(name string) error {
	return t.seedCategory(name, entity.CategoryTypeExpense)
}

func (t *testContext) anIncomeCategoryNamedExists(name string) error {
	return t.seedCategory(name, entity.CategoryTypeIncome)
}

func (t *testContext) seedCategory(name string, categoryType entity.CategoryType) error {
	category := entity.NewCategory(name, categoryType, "")
	if err := persistence.NewCategoryRepository(t.db.DbConn).Create(context.Background(), category); err != nil {
		return err
	}
	t.ids["categoryId"] = category.ID.String()
	return nil
}

func (t *testContext) anAccountNamedWithBalanceExists(name, balance string) error {
	amount, err := dto.ParseAmount(balance)
	if err != nil {
		return fmt.Errorf("invalid balance %q: %w", balance, err)
	}
	account := entity.NewAccount(name, amount, "")
	if err := persistence.NewAccountRepository(t.db.DbConn).Create(context.Background(), account); err != nil {
		return err
	}
	t.ids["accountId"] = account.ID.String()
	return nil
}

func (t *testContext) aBudgetForCategoryExists(amount, category string, year, month int) error {
	minor, err := dto.ParseAmount(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	budget := entity.NewBudget(category, minor, 0, year, month, "")
	if err := persistence.NewBudgetRepository(t.db.DbConn).Create(context.Background(), budget); err != nil {
		return err
	}
	t.ids["budgetId"] = budget.ID.String()
	return nil
}

func (t *testContext) aTotalBudgetExists(amount string, year, month int) error {
	minor, err := dto.ParseAmount(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	budget := entity.NewBudget(entity.TotalBudgetCategory, minor, 0, year, month, "")
	return persistence.NewBudgetRepository(t.db.DbConn).UpsertTotalForMonth(context.Background(), budget)
}

func (t *testContext) iSendARequestTo(method, endpoint string) error {
	return t.doRequest(method, endpoint, nil)
}

func (t *testContext) iSendARequestToWithBody(method, endpoint string, body *godog.DocString) error {
	payload := bytes.NewBufferString(t.substitute(body.Content))
	return t.doRequest(method, endpoint, payload)
}

func (t *testContext) doRequest(method, endpoint string, body io.Reader) error {
	url := t.server.URL + t.substitute(endpoint)
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	t.responseCode = resp.StatusCode
	t.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func (t *testContext) iStoreTheResponseFieldAs(field, name string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}
	t.ids[name] = fmt.Sprintf("%v", value)
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.responseCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, t.responseCode, string(t.responseBody))
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	var js json.RawMessage
	if err := json.Unmarshal(t.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if !strings.Contains(string(t.responseBody), t.substitute(expected)) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, string(t.responseBody))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	if actual != t.substitute(expected) {
		return fmt.Errorf("field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.responseField(field)
	return err
}

// responseField resolves a dot-separated path through the response JSON.
// Numeric segments index into arrays.
func (t *testContext) responseField(path string) (any, error) {
	var data any
	if err := json.Unmarshal(t.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response. Body: %s", path, string(t.responseBody))
			}
			current = value
		case []any:
			var index int
			if _, err := fmt.Sscanf(segment, "%d", &index); err != nil {
				return nil, fmt.Errorf("field %q: %q is not an array index", path, segment)
			}
			if index < 0 || index >= len(node) {
				return nil, fmt.Errorf("field %q: index %d out of range", path, index)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field %q: cannot descend into %T", path, current)
		}
	}
	return current, nil
}

func (t *testContext) theDbShouldContainRowsInTheTable(expected int, table string) error {
	count, err := t.db.CountRows(table)
	if err != nil {
		return fmt.Errorf("failed to count rows in %q: %w", table, err)
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d rows in %q, got %d", expected, table, count)
	}
	return nil
}

func (t *testContext) theAccountShouldHaveBalance(name, expected string) error {
	var account model.AccountModel
	if err := t.db.DbConn.Where("name = ?", name).First(&account).Error; err != nil {
		return fmt.Errorf("failed to load account %q: %w", name, err)
	}
	actual := dto.FormatAmount(account.Balance)
	if actual != expected {
		return fmt.Errorf("account %q balance expected %s, got %s", name, expected, actual)
	}
	return nil
}

func (t *testContext) theBudgetShouldHaveSpent(category string, year, month int, expected string) error {
	var budget model.BudgetModel
	err := t.db.DbConn.
		Where("category = ? AND year = ? AND month = ?", category, year, month).
		Order("created_at").
		First(&budget).Error
	if err != nil {
		return fmt.Errorf("failed to load budget %q for %d-%d: %w", category, year, month, err)
	}
	actual := dto.FormatAmount(budget.SpentAmount)
	if actual != expected {
		return fmt.Errorf("budget %q spent expected %s, got %s", category, expected, actual)
	}
	return nil
}
