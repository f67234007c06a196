package quest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/questx-lab/nftdrop/internal/common"
	"github.com/questx-lab/nftdrop/internal/entity"
	"github.com/questx-lab/nftdrop/pkg/api"
	"github.com/questx-lab/nftdrop/pkg/errorx"
)

// Review sets the review status of the given claimed quests.
func (c *Client) Review(
	ctx context.Context, claimedQuestIDs []string, status entity.ClaimedQuestStatus, comment string,
) error {
	if len(claimedQuestIDs) == 0 {
		return nil
	}

	if status != entity.Success && status != entity.Fail {
		return errorx.New(errorx.BadRequest, "Cannot review with status %q", status)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return newTransportError(err.Error())
	}

	ids := make([]any, 0, len(claimedQuestIDs))
	for _, id := range claimedQuestIDs {
		ids = append(ids, id)
	}

	resp, err := c.apiGenerator.New(c.cfg.BaseURL, "/communities/%s/claimed-quests/review", c.cfg.Subdomain).
		Body(api.JSON{
			"status":          string(status),
			"claimedQuestIds": ids,
			"comment":         comment,
		}).
		POST(ctx, api.APIKey(apiKeyHeader, c.cfg.APIKey))
	if err != nil {
		return newTransportError(err.Error())
	}

	common.PromCounters[common.QuestAPIRequestTotal].
		WithLabelValues(http.MethodPost, strconv.Itoa(resp.Code)).Inc()

	if !resp.IsSuccess() {
		return newStatusError(resp.Code, responseDetail(resp))
	}

	return nil
}
