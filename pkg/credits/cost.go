package credits

// DefaultModelCost is charged for absent or unrecognized models. Costing
// never fails: every input resolves to a positive credit amount.
const DefaultModelCost int64 = 2

// defaultModelCosts maps model identifiers to their cost in credits
// (1 credit = $0.01). Prices include margin over raw API cost, so cheap
// models cost 1 credit and frontier models up to 20.
var defaultModelCosts = map[string]int64{
	// OpenAI
	"gpt-4o-mini":   1,
	"gpt-4o":        3,
	"gpt-4-turbo":   3,
	"gpt-4":         3,
	"gpt-3.5-turbo": 1,
	"o1-mini":       2,
	"o1-preview":    5,
	"o1":            5,
	"o3-mini":       2,

	// Anthropic (restricted to Pro and above, see Gate)
	"claude-3-haiku-20240307":    2,
	"claude-3-5-haiku-20241022":  2,
	"claude-3-sonnet-20240229":   5,
	"claude-3-5-sonnet-20241022": 5,
	"claude-3-5-sonnet-20240620": 5,
	"claude-sonnet-4-20250514":   5,
	"claude-3-opus-20240229":     20,
	"claude-opus-4-20250514":     20,

	// Google
	"gemini-pro":           1,
	"gemini-1.5-pro":       2,
	"gemini-1.5-flash":     1,
	"gemini-2.0-flash":     1,
	"gemini-2.0-flash-exp": 1,

	// Mistral
	"mistral-large-latest":  2,
	"mistral-medium-latest": 1,
	"mistral-small-latest":  1,

	// Groq
	"llama-3.1-70b-versatile": 1,
	"llama-3.1-8b-instant":    1,
	"mixtral-8x7b-32768":      1,

	// DeepSeek
	"deepseek-chat":     1,
	"deepseek-reasoner": 2,

	// OpenRouter (provider/model format)
	"openrouter/auto":                      2,
	"openai/gpt-4o-mini":                   1,
	"openai/gpt-4o":                        3,
	"openai/gpt-4.1":                       5,
	"openai/gpt-4.1-mini":                  2,
	"openai/gpt-4.1-nano":                  1,
	"openai/o1-mini":                       2,
	"openai/o1-preview":                    5,
	"openai/o3-mini":                       3,
	"openai/o3-mini-high":                  3,
	"openai/o3":                            10,
	"openai/o4-mini":                       3,
	"openai/o4-mini-high":                  3,
	"google/gemini-2.5-pro":                5,
	"google/gemini-2.5-pro-preview":        5,
	"google/gemini-2.5-flash":              1,
	"google/gemini-2.5-flash-preview":      1,
	"deepseek/deepseek-chat-v3.1":          1,
	"deepseek/deepseek-chat-v3-0324":       1,
	"deepseek/deepseek-chat-v3-0324:free":  1,
	"deepseek/deepseek-r1":                 3,
	"deepseek/deepseek-r1:free":            1,
	"deepseek/deepseek-r1-0528":            2,
	"deepseek/deepseek-r1-0528:free":       1,
	"anthropic/claude-3-haiku":             2,
	"anthropic/claude-sonnet-4.5":          5,
	"anthropic/claude-opus-4.5":            20,
	"qwen/qwen3-14b":                       1,
	"qwen/qwen3-32b":                       1,
	"qwen/qwen3-235b-a22b":                 2,
	"thudm/glm-4-32b":                      1,
	"thudm/glm-z1-32b":                     2,
	"tngtech/deepseek-r1t-chimera:free":    1,
}

// ModelCost returns the credit cost for a model using the built-in table.
// Absent and unknown models resolve to DefaultModelCost.
func ModelCost(model string) int64 {
	if model == "" {
		return DefaultModelCost
	}
	if cost, ok := defaultModelCosts[model]; ok {
		return cost
	}
	return DefaultModelCost
}
