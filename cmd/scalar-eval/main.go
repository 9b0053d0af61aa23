package main

import (
	"bufio"
	"errors"
	"flag"
	"io"
	"os"

	"git.gammaspectra.live/P2Pool/zkn/scalar"
	"git.gammaspectra.live/P2Pool/zkn/scalar/aes"
	"git.gammaspectra.live/P2Pool/zkn/types"
	"git.gammaspectra.live/P2Pool/zkn/utils"
)

type result struct {
	Request types.Request `json:"request"`
	Result  *types.Word   `json:"result,omitempty"`
	Error   string        `json:"error,omitempty"`
}

func main() {
	configPath := flag.String("config", "", "JSON config file. Flags override its values")
	xlen := flag.Int("xlen", 0, "Register width, 32 or 64. Defaults to 64")
	sbox := flag.String("sbox", "", "S-box implementation, table or algebraic")
	inputPath := flag.String("input", "", "File with one JSON request per line. Defaults to stdin")
	routines := flag.Int("routines", 1, "Number of evaluation routines. Values above 1 stop at the first failed request. 0 uses all CPUs")
	debug := flag.Bool("debug", false, "Log at debug level")
	flag.Parse()

	if *debug {
		utils.GlobalLogLevel |= utils.LogLevelNotice | utils.LogLevelDebug
		utils.LogFile = true
	}

	cfg := scalar.DefaultConfig()
	if *configPath != "" {
		f, err := os.Open(*configPath)
		if err != nil {
			utils.Fatalf("could not open config: %s", err)
		}
		cfg, err = scalar.LoadConfig(f)
		_ = f.Close()
		if err != nil {
			utils.Fatalf("could not load config %s: %s", *configPath, err)
		}
	}
	if *xlen != 0 {
		cfg.XLen = *xlen
	}
	if *sbox != "" {
		if err := cfg.SBox.UnmarshalJSON([]byte("\"" + *sbox + "\"")); err != nil {
			utils.Fatalf("invalid sbox: %s", err)
		}
	}

	core, err := scalar.New(cfg)
	if err != nil {
		utils.Fatalf("could not create core: %s", err)
	}

	var input io.Reader = os.Stdin
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			utils.Fatalf("could not open input: %s", err)
		}
		defer f.Close()
		input = f
	}

	requests, err := readRequests(input)
	if err != nil {
		utils.Fatalf("could not read requests: %s", err)
	}
	utils.Logf("Eval", "read %d requests, xlen = %d, sbox = %s", len(requests), cfg.XLen, cfg.SBox)

	results := make([]result, len(requests))
	if *routines == 1 {
		for i, req := range requests {
			results[i] = evaluate(core, req)
		}
	} else {
		words := make([]types.Word, len(requests))
		if err := core.EvaluateBatch(requests, words, *routines); err != nil {
			utils.Fatalf("batch failed: %s", err)
		}
		for i := range requests {
			results[i] = result{Request: requests[i], Result: &words[i]}
		}
	}

	w := bufio.NewWriter(os.Stdout)
	encoder := utils.NewJSONEncoder(w)
	var failed int
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
		if err := encoder.Encode(r); err != nil {
			utils.Fatalf("could not write result: %s", err)
		}
	}
	if err := w.Flush(); err != nil {
		utils.Fatalf("could not write results: %s", err)
	}

	if failed > 0 {
		utils.Errorf("Eval", "%d of %d requests failed", failed, len(requests))
		os.Exit(1)
	}
}

func readRequests(r io.Reader) (requests []types.Request, err error) {
	decoder := utils.NewJSONDecoder(r)
	for {
		var req types.Request
		if err = decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return requests, nil
			}
			return nil, utils.ErrorfNoEscape("request %d: %s", len(requests), err)
		}
		requests = append(requests, req)
	}
}

func evaluate(core *scalar.Core, req types.Request) result {
	r, err := core.Evaluate(req)
	if err != nil {
		if errors.Is(err, aes.ErrUnsupportedOperation) {
			utils.Debugf("Eval", "%s is not available on xlen %d", req.Operation, core.XLen())
		}
		return result{Request: req, Error: err.Error()}
	}
	return result{Request: req, Result: &r}
}
