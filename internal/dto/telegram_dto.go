package dto

// TelegramUpdate is the inbound webhook payload shape. Only the fields the
// bot reads are bound; everything else Telegram sends is ignored.
type TelegramUpdate struct {
	UpdateID int64            `json:"update_id"`
	Message  *TelegramMessage `json:"message"`
}

// TelegramMessage carries the chat identity and the raw command text.
type TelegramMessage struct {
	MessageID int64        `json:"message_id"`
	Chat      TelegramChat `json:"chat"`
	From      TelegramUser `json:"from"`
	Text      string       `json:"text"`
}

type TelegramChat struct {
	ID int64 `json:"id"`
}

type TelegramUser struct {
	ID int64 `json:"id"`
}
