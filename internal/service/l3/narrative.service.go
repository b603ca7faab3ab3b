package l3_service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"fundtracker/internal/domain"
	"fundtracker/internal/logger"
	"fundtracker/internal/repository"
)

const narrativeSystemPrompt = `你是一名专业的基金销售数据分析师，擅长分析机构资金申赎行为和市场趋势。
请用简练、专业的中文输出分析。

严格要求：
- 只输出合法JSON，不要有任何额外文字、注释、Markdown格式或代码块标记。
- 不要输出` + "```json或```" + `等标记。`

const narrativeUserPromptTemplate = `请分析以下基金申赎月度汇总数据（单位：亿元），生成结构化摘要。

数据：
%s

输出格式（严格JSON）：
{
    "overall": "多行文本，用\n分隔，每条以数字序号开头",
    "institutions": {
        "机构名1": "多行文本",
        "机构名2": "多行文本",
        ...
    }
}

分析规范：
1. overall（3-5条）：
   - 指出净申购/净赎回规模最大的机构类型及金额
   - 指出最受青睐和被大幅赎回的基金大类及金额
   - 总结市场整体趋势特征
   - 金额保留两位小数，用括号标注，如（69.95）；负值表示净赎回，如（-75.00）

2. institutions（覆盖所有机构，每个2-4条）：
   - 第一条说明该机构总体净申购/净赎回方向及金额
   - 后续条目说明在各大类基金（权益、纯债、固收+、QDII、香港互认）的配置行为
   - 提及具体子类偏好时引用子类名称和金额，如"偏好大盘成长型（9.16）和中盘成长型（8.89）"
   - 每条以序号开头，用分号结尾
   - 交易量极小的机构可只写1-2条

3. institutions的键名必须与数据列名中"净申赎"前的机构名完全一致（如列名为"保险净申赎"则键名为"保险"）`

var (
	fenceOpenRegex  = regexp.MustCompile("^```(?:json)?\\s*")
	fenceCloseRegex = regexp.MustCompile("\\s*```$")
)

// NarrativeService turns a report table into validated analyst commentary
// via chat completion. Reasoning models wrap their answer in <think>
// preambles and markdown fences, so the completion is scrubbed before
// parsing, and malformed completions are retried.
type NarrativeService interface {
	Summarize(ctx context.Context, table domain.ReportTable) (*domain.NarrativeSummary, error)
}

type narrativeServiceHandler struct {
	GptRepository repository.GptRepository
	MaxRetries    int
	RetryDelay    time.Duration
}

func NewNarrativeService(gptRepository repository.GptRepository, maxRetries int, retryDelay time.Duration) NarrativeService {
	return narrativeServiceHandler{
		GptRepository: gptRepository,
		MaxRetries:    maxRetries,
		RetryDelay:    retryDelay,
	}
}

func (h narrativeServiceHandler) Summarize(ctx context.Context, table domain.ReportTable) (*domain.NarrativeSummary, error) {
	userPrompt := fmt.Sprintf(narrativeUserPromptTemplate, renderTableCsv(table))

	var lastErr error
	for attempt := 0; attempt <= h.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * h.RetryDelay):
			}
		}

		raw, err := h.GptRepository.CreateChatCompletion(ctx, narrativeSystemPrompt, userPrompt)
		if err == nil {
			var summary *domain.NarrativeSummary
			summary, err = extractNarrativeJson(raw)
			if err == nil {
				err = validateNarrative(summary)
			}
			if err == nil {
				return summary, nil
			}
		}
		lastErr = err
		logger.FromContext(ctx).Warnf("narrative attempt %d/%d failed: %v", attempt+1, h.MaxRetries+1, err)
	}

	return nil, fmt.Errorf("failed to generate narrative after %d attempts: %w", h.MaxRetries+1, lastErr)
}

// renderTableCsv lays the table out the way the completion prompt expects:
// one column per institution plus the cross-institution total, and a final
// row summing the major categories. Amounts are fixed to two decimals.
func renderTableCsv(table domain.ReportTable) string {
	var sb strings.Builder

	sb.WriteString("基金类型")
	for _, institution := range table.Institutions {
		sb.WriteString("," + institution + "净申赎")
	}
	sb.WriteString(",合计\n")

	for _, category := range table.Categories {
		sb.WriteString(category)
		for _, institution := range table.Institutions {
			sb.WriteString("," + table.Cell(category, institution).StringFixed(2))
		}
		sb.WriteString("," + table.CategoryTotals[category].StringFixed(2) + "\n")
	}

	sb.WriteString("总计")
	for _, institution := range table.Institutions {
		sb.WriteString("," + table.InstitutionTotals[institution].StringFixed(2))
	}
	sb.WriteString("," + table.GrandTotal.StringFixed(2) + "\n")

	return sb.String()
}

func extractNarrativeJson(raw string) (*domain.NarrativeSummary, error) {
	text := raw
	if idx := strings.LastIndex(text, "</think>"); idx >= 0 {
		text = text[idx+len("</think>"):]
	}
	text = fenceOpenRegex.ReplaceAllString(strings.TrimSpace(text), "")
	text = fenceCloseRegex.ReplaceAllString(strings.TrimSpace(text), "")
	text = strings.TrimSpace(text)

	summary := &domain.NarrativeSummary{}
	if err := json.Unmarshal([]byte(text), summary); err == nil {
		return summary, nil
	}

	// the completion may still bury the object in surrounding prose
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		summary = &domain.NarrativeSummary{}
		if err := json.Unmarshal([]byte(text[start:end+1]), summary); err == nil {
			return summary, nil
		}
	}

	preview := raw
	if len(preview) > 200 {
		preview = preview[:200]
	}
	return nil, fmt.Errorf("no json object in completion: %s", preview)
}

func validateNarrative(summary *domain.NarrativeSummary) error {
	summary.Overall = strings.TrimSpace(summary.Overall)
	if summary.Overall == "" {
		return errors.New("completion missing overall commentary")
	}
	if len(summary.Institutions) == 0 {
		return errors.New("completion missing institution commentary")
	}
	for institution, commentary := range summary.Institutions {
		trimmed := strings.TrimSpace(commentary)
		if trimmed == "" {
			return fmt.Errorf("completion has empty commentary for %s", institution)
		}
		summary.Institutions[institution] = trimmed
	}

	return nil
}
