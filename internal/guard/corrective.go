package guard

import "github.com/MikeSquared-Agency/wisdom/internal/llm"

const correctiveEnglish = `CRITICAL LANGUAGE REQUIREMENT: Your previous response was written in the wrong language. ` +
	`You MUST respond ENTIRELY in English. Do NOT use any Chinese characters anywhere in your reply, ` +
	`including names, quotes or punctuation. There are no exceptions. ` +
	`Any non-English text in your response is a CRITICAL ERROR.`

const correctiveChinese = `【严格语言要求】你之前的回复使用了错误的语言。` +
	`你必须完全使用简体中文回复，不得使用英文句子，人名和引文也必须翻译成中文。` +
	`没有任何例外。回复中出现任何非中文内容都将被视为严重错误。`

// CorrectiveMessage returns the system instruction injected on retry.
func CorrectiveMessage(lang Language) llm.Message {
	content := correctiveEnglish
	if lang == Chinese {
		content = correctiveChinese
	}
	return llm.Message{Role: llm.RoleSystem, Content: content}
}

// InsertCorrective returns a copy of messages with corrective placed right
// before the last user message, or appended when there is none.
func InsertCorrective(messages []llm.Message, corrective llm.Message) []llm.Message {
	at := len(messages)
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == llm.RoleUser {
			at = i
			break
		}
	}

	out := make([]llm.Message, 0, len(messages)+1)
	out = append(out, messages[:at]...)
	out = append(out, corrective)
	out = append(out, messages[at:]...)
	return out
}
