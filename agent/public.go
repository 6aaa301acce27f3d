package agent

import (
	"context"
	"fmt"

	"github.com/etnz/dividend"
	"github.com/etnz/dividend/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his dividend income: what his stocks paid,
			what they are about to pay, and how far along his cash-flow goals he is.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.

			The user will assume that you know about his stock tickers, check the ledger first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst returns the market analyst expert, grounded with Google Search.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an expert market analyst,
		very well aware of listed companies, ETFs and their dividend policies,
		and of the latest announcements and news.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert market analyst. You can search and find anything related to
			listed companies, ETFs, markets and dividend announcements. You leverage Google
			Search to ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewBookkeeper returns the bookkeeper expert, in charge of the user's
// ledger and dividend files.
func NewBookkeeper(ledgerFile, dividendsFile, goalsFile string) *Expert {
	lib := bookkeeperFunctions(ledgerFile, dividendsFile, goalsFile)

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's transaction
		ledger and stored dividend announcements.
		He can compute the relevant figures about the user's positions, dividend income and goals.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's transaction ledger and dividend records.
				You know how to use the Tools to extract relevant information. You are part of a
				team of experts, yours is everything about the user's positions and dividend income.
				They might ask you questions with approximative language, figure out what they meant.

				Use the available tools to get information about
				  - current positions and their cost basis
				  - the dividend summary per currency
				  - progress against the cash-flow goals
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func bookkeeperFunctions(ledgerFile, dividendsFile, goalsFile string) []Function {
	dateParam := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"date": {
				Type:        genai.TypeString,
				Description: "The as-of date, YYYY-MM-DD. Today is the default.",
			},
		},
	}

	summaryInput := func(args map[string]any) (dividend.SummaryInput, error) {
		asOf, err := parseDate(args)
		if err != nil {
			return dividend.SummaryInput{}, err
		}
		ledger, err := dividend.LoadLedger(ledgerFile)
		if err != nil {
			return dividend.SummaryInput{}, err
		}
		events, err := dividend.LoadDividends(dividendsFile)
		if err != nil {
			return dividend.SummaryInput{}, err
		}
		return dividend.SummaryInput{
			TransactionHistory: ledger.Records(),
			DividendEvents:     events,
			AsOf:               asOf,
		}, nil
	}

	holdings := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Holdings",
			Description: `Holdings lists the user's current positions with their quantity,
			total cost and weighted-average price.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the current positions.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ledger, err := dividend.LoadLedger(ledgerFile)
			if err != nil {
				return errorResponse(id, "Holdings", err)
			}
			s := dividend.SummarizeInventory(ledger.Records(), nil)
			return outputResponse(id, "Holdings", renderer.InventoryMarkdown(s))
		},
	}

	summary := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "DividendSummary",
			Description: `DividendSummary computes the dividend income figures per currency:
			accumulated total, current-year total, monthly average and monthly minimum.`,
			Parameters: dateParam,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted dividend summary.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			input, err := summaryInput(args)
			if err != nil {
				return errorResponse(id, "DividendSummary", err)
			}
			s := dividend.CalculateSummary(input)
			return outputResponse(id, "DividendSummary", renderer.SummaryMarkdown(s))
		},
	}

	goals := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Goals",
			Description: `Goals reports the user's cash-flow goals and how far along each one is,
			measured against the dividend summary.`,
			Parameters: dateParam,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted goal dashboard.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			input, err := summaryInput(args)
			if err != nil {
				return errorResponse(id, "Goals", err)
			}
			s := dividend.CalculateSummary(input)
			settings := dividend.LoadGoalSettings(goalsFile)
			vm := dividend.BuildGoalViewModel(s, settings, dividend.DefaultMessages())
			return outputResponse(id, "Goals", renderer.GoalsMarkdown(vm))
		},
	}

	return []Function{holdings, summary, goals}
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func outputResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func parseDate(args map[string]any) (dividend.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return dividend.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return dividend.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}
	date, err := dividend.ParseDate(sdate)
	if err != nil {
		return dividend.Today(), fmt.Errorf("argument 'date' must be a valid date, got %q", sdate)
	}
	return date, nil
}
