package evmrpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/arwah7/dragonet/internal/ledger"
	"github.com/arwah7/dragonet/internal/ledger/httpclient"
	"github.com/arwah7/dragonet/internal/model"
)

func init() {
	ledger.Register("evmrpc", New)
}

// Source implements ledger.Source over the Ethereum JSON-RPC surface that
// many chains expose. Heights and timestamps arrive as 0x-prefixed hex.
type Source struct {
	client   *httpclient.Client
	interval time.Duration
}

// New builds the evmrpc source. The endpoint is the RPC URL and is required;
// the API key, when set, is sent as a Bearer token.
func New(cfg ledger.SourceConfig) (ledger.Source, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("evmrpc: endpoint is required")
	}
	return &Source{
		client:   httpclient.New(cfg.Endpoint, cfg.APIKey),
		interval: cfg.Interval(),
	}, nil
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcBlock struct {
	Number    string `json:"number"`
	Hash      string `json:"hash"`
	Timestamp string `json:"timestamp"`
}

func (s *Source) call(ctx context.Context, method string, params []any, result any) error {
	req := rpcRequest{JSONRPC: "2.0", ID: 1, Method: method, Params: params}
	var resp rpcResponse
	if err := s.client.PostJSON(ctx, "", req, &resp); err != nil {
		return fmt.Errorf("evmrpc: %s: %w", method, err)
	}
	if resp.Error != nil {
		return fmt.Errorf("evmrpc: %s: %w", method, resp.Error)
	}
	if len(resp.Result) == 0 || string(resp.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(resp.Result, result); err != nil {
		return fmt.Errorf("evmrpc: %s: %w", method, err)
	}
	return nil
}

func (s *Source) LatestHeight(ctx context.Context) (int64, error) {
	var hexHeight string
	if err := s.call(ctx, "eth_blockNumber", []any{}, &hexHeight); err != nil {
		return 0, err
	}
	return parseHex(hexHeight)
}

func (s *Source) FetchRange(ctx context.Context, from, to int64) ([]model.RawBlock, error) {
	out := make([]model.RawBlock, 0, to-from+1)
	for h := from; h <= to; h++ {
		var blk rpcBlock
		if err := s.call(ctx, "eth_getBlockByNumber", []any{hexHeight(h), false}, &blk); err != nil {
			return nil, err
		}
		if blk.Hash == "" {
			// Past the head; the block is not produced yet.
			break
		}
		height, err := parseHex(blk.Number)
		if err != nil {
			return nil, fmt.Errorf("evmrpc: block %d: %w", h, err)
		}
		ts, err := parseHex(blk.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("evmrpc: block %d: %w", h, err)
		}
		out = append(out, model.RawBlock{
			Height: height,
			// Strip the 0x prefix so its zero never reads as a result digit.
			Hash: strings.TrimPrefix(blk.Hash, "0x"),
			Time: time.Unix(ts, 0).UTC(),
		})
	}
	return out, nil
}

func (s *Source) Stream(ctx context.Context, fromHeight int64) (<-chan model.RawBlock, error) {
	return ledger.Poll(ctx, s, "evmrpc", fromHeight, s.interval), nil
}

func hexHeight(h int64) string {
	return "0x" + strconv.FormatInt(h, 16)
}

func parseHex(s string) (int64, error) {
	trimmed := strings.TrimPrefix(s, "0x")
	if trimmed == "" {
		return 0, fmt.Errorf("empty hex quantity %q", s)
	}
	v, err := strconv.ParseInt(trimmed, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("bad hex quantity %q: %w", s, err)
	}
	return v, nil
}
