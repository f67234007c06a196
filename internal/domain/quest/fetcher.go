package quest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/questx-lab/nftdrop/config"
	"github.com/questx-lab/nftdrop/internal/common"
	"github.com/questx-lab/nftdrop/internal/entity"
	"github.com/questx-lab/nftdrop/internal/model"
	"github.com/questx-lab/nftdrop/pkg/api"
	"github.com/questx-lab/nftdrop/pkg/enum"
	"github.com/questx-lab/nftdrop/pkg/errorx"
	"github.com/questx-lab/nftdrop/pkg/xcontext"
	"golang.org/x/time/rate"
)

const (
	apiKeyHeader = "x-api-key"

	// SubmissionLabel is the field label given to the single free-text answer
	// of a quest which has no custom fields.
	SubmissionLabel = "submission"

	maxDetailLength = 256
)

type Fetcher interface {
	FetchCompletions(
		ctx context.Context, questID string, status entity.ClaimedQuestStatus,
	) ([]model.CompletionRecord, error)
}

type Reviewer interface {
	Review(ctx context.Context, claimedQuestIDs []string, status entity.ClaimedQuestStatus, comment string) error
}

// Client talks to the claimed-quests endpoints of the quest platform.
type Client struct {
	cfg          config.ZealyConfigs
	apiGenerator api.Generator
	limiter      *rate.Limiter
}

func NewClient(cfg config.ZealyConfigs, apiGenerator api.Generator) *Client {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &Client{
		cfg:          cfg,
		apiGenerator: apiGenerator,
		limiter:      rate.NewLimiter(limit, 1),
	}
}

// FetchCompletions returns every claimed quest of questID with the given
// status, concatenating all pages in the order the service returns them.
// Any failure aborts the whole fetch; no partial list is returned.
func (c *Client) FetchCompletions(
	ctx context.Context, questID string, status entity.ClaimedQuestStatus,
) ([]model.CompletionRecord, error) {
	if strings.TrimSpace(questID) == "" {
		return nil, errorx.New(errorx.BadRequest, "Require a quest id")
	}

	if !enum.IsValid(status) {
		return nil, errorx.New(errorx.BadRequest, "Invalid claimed quest status %q", status)
	}

	limit := c.cfg.PageLimit
	if limit <= 0 {
		limit = 100
	}

	records := []model.CompletionRecord{}
	firstIDOfLastPage := ""
	for page := 1; ; page++ {
		items, totalPages, err := c.fetchPage(ctx, questID, status, page, limit)
		if err != nil {
			return nil, err
		}

		if len(items) == 0 {
			break
		}

		// Some deployments ignore the page parameter and always return the
		// first page.
		if page > 1 && items[0].ID != "" && items[0].ID == firstIDOfLastPage {
			xcontext.Logger(ctx).Warnf("Quest service returned page %d twice, stop paginating", page-1)
			break
		}
		firstIDOfLastPage = items[0].ID

		for _, item := range items {
			if item.Status != status {
				xcontext.Logger(ctx).Debugf("Ignore claimed quest %s with status %s", item.ID, item.Status)
				continue
			}
			records = append(records, item)
		}

		if totalPages > 0 && page >= totalPages {
			break
		}

		if len(items) < limit {
			break
		}
	}

	xcontext.Logger(ctx).Debugf("Fetched %d claimed quests of %s (%s)", len(records), questID, status)
	return records, nil
}

func (c *Client) fetchPage(
	ctx context.Context, questID string, status entity.ClaimedQuestStatus, page, limit int,
) ([]model.CompletionRecord, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, newTransportError(err.Error())
	}

	resp, err := c.apiGenerator.New(c.cfg.BaseURL, "/communities/%s/claimed-quests", c.cfg.Subdomain).
		Query(api.Parameter{
			"quest_id": questID,
			"status":   string(status),
			"page":     strconv.Itoa(page),
			"limit":    strconv.Itoa(limit),
		}).
		GET(ctx, api.APIKey(apiKeyHeader, c.cfg.APIKey))
	if err != nil {
		return nil, 0, newTransportError(err.Error())
	}

	common.PromCounters[common.QuestAPIRequestTotal].
		WithLabelValues(http.MethodGet, strconv.Itoa(resp.Code)).Inc()

	if !resp.IsSuccess() {
		return nil, 0, newStatusError(resp.Code, responseDetail(resp))
	}

	body, ok := resp.Body.(api.JSON)
	if !ok {
		return nil, 0, newStatusError(resp.Code, "invalid response body")
	}

	data, err := body.GetArray("data")
	if err != nil {
		return nil, 0, newStatusError(resp.Code, err.Error())
	}

	totalPages, err := body.GetInt("totalPages")
	if err != nil {
		totalPages = 0
	}

	records := make([]model.CompletionRecord, 0, len(data))
	for i, item := range data {
		record, err := decodeRecord(item)
		if err != nil {
			return nil, 0, newStatusError(resp.Code, fmt.Sprintf("item %d of page %d: %v", i, page, err))
		}
		records = append(records, record)
	}

	return records, totalPages, nil
}

type claimedQuestItem struct {
	ID     string `mapstructure:"id"`
	UserID string `mapstructure:"userId"`
	User   struct {
		ID string `mapstructure:"id"`
	} `mapstructure:"user"`
	Status     string                  `mapstructure:"status"`
	Fields     []model.FieldSubmission `mapstructure:"fields"`
	Submission struct {
		Value string `mapstructure:"value"`
	} `mapstructure:"submission"`
}

func decodeRecord(item api.JSON) (model.CompletionRecord, error) {
	var raw claimedQuestItem
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &raw,
	})
	if err != nil {
		return model.CompletionRecord{}, err
	}

	if err := decoder.Decode(map[string]any(item)); err != nil {
		return model.CompletionRecord{}, err
	}

	userID := raw.User.ID
	if userID == "" {
		userID = raw.UserID
	}

	fields := raw.Fields
	if raw.Submission.Value != "" {
		fields = append(fields, model.FieldSubmission{Label: SubmissionLabel, Value: raw.Submission.Value})
	}

	status, err := enum.ToEnum[entity.ClaimedQuestStatus](raw.Status)
	if err != nil {
		// Unknown statuses are kept as is, they never match a requested one.
		status = entity.ClaimedQuestStatus(raw.Status)
	}

	return model.CompletionRecord{
		ID:     raw.ID,
		UserID: userID,
		Status: status,
		Fields: fields,
	}, nil
}

func responseDetail(resp *api.Response) string {
	if body, ok := resp.Body.(api.JSON); ok {
		if msg, err := body.GetString("message"); err == nil && msg != "" {
			return msg
		}
	}

	detail := strings.TrimSpace(string(resp.RawBody))
	if detail == "" {
		return http.StatusText(resp.Code)
	}

	if len(detail) > maxDetailLength {
		detail = detail[:maxDetailLength]
	}

	return detail
}
