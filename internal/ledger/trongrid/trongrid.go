package trongrid

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/arwah7/dragonet/internal/ledger"
	"github.com/arwah7/dragonet/internal/ledger/httpclient"
	"github.com/arwah7/dragonet/internal/model"
)

const defaultEndpoint = "https://api.trongrid.io"

// getblockbylimitnext caps each response at 100 blocks.
const rangeLimit = 100

func init() {
	ledger.Register("trongrid", New)
}

// Source implements ledger.Source against a TRON full-node HTTP API.
type Source struct {
	client   *httpclient.Client
	interval time.Duration
}

// New builds the trongrid source. The API key, when set, is sent in the
// TRON-PRO-API-KEY header.
func New(cfg ledger.SourceConfig) (ledger.Source, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	var opts []httpclient.Option
	if cfg.APIKey != "" {
		opts = append(opts, httpclient.WithHeader("TRON-PRO-API-KEY", cfg.APIKey))
	}
	return &Source{
		client:   httpclient.New(endpoint, "", opts...),
		interval: cfg.Interval(),
	}, nil
}

// Response types (unexported).

type block struct {
	BlockID string      `json:"blockID"`
	Header  blockHeader `json:"block_header"`
}

type blockHeader struct {
	RawData blockRawData `json:"raw_data"`
}

type blockRawData struct {
	Number    int64 `json:"number"`
	Timestamp int64 `json:"timestamp"` // unix milliseconds
}

type rangeRequest struct {
	StartNum int64 `json:"startNum"`
	EndNum   int64 `json:"endNum"` // exclusive
}

type rangeResponse struct {
	Block []block `json:"block"`
}

func toRawBlock(b block) model.RawBlock {
	return model.RawBlock{
		Height: b.Header.RawData.Number,
		Hash:   b.BlockID,
		Time:   time.UnixMilli(b.Header.RawData.Timestamp).UTC(),
	}
}

func (s *Source) LatestHeight(ctx context.Context) (int64, error) {
	var resp block
	if err := s.client.PostJSON(ctx, "/wallet/getnowblock", struct{}{}, &resp); err != nil {
		return 0, fmt.Errorf("trongrid: now block: %w", err)
	}
	return resp.Header.RawData.Number, nil
}

func (s *Source) FetchRange(ctx context.Context, from, to int64) ([]model.RawBlock, error) {
	var out []model.RawBlock
	for start := from; start <= to; start += rangeLimit {
		end := start + rangeLimit - 1
		if end > to {
			end = to
		}

		var resp rangeResponse
		req := rangeRequest{StartNum: start, EndNum: end + 1}
		if err := s.client.PostJSON(ctx, "/wallet/getblockbylimitnext", req, &resp); err != nil {
			return nil, fmt.Errorf("trongrid: blocks %d-%d: %w", start, end, err)
		}
		for _, b := range resp.Block {
			out = append(out, toRawBlock(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Height < out[j].Height })
	return out, nil
}

func (s *Source) Stream(ctx context.Context, fromHeight int64) (<-chan model.RawBlock, error) {
	return ledger.Poll(ctx, s, "trongrid", fromHeight, s.interval), nil
}
