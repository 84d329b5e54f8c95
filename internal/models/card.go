package models

// Card is shown in the companion app. Use the named constructors, they
// populate only the fields valid for each card type.
type Card struct {
	Type        CardType   `json:"type"`
	Title       string     `json:"title,omitempty"`
	Text        string     `json:"text,omitempty"`
	Content     string     `json:"content,omitempty"`
	Image       *CardImage `json:"image,omitempty"`
	Permissions []string   `json:"permissions,omitempty"`
}

type CardImage struct {
	SmallImageURL string `json:"smallImageUrl,omitempty"`
	LargeImageURL string `json:"largeImageUrl,omitempty"`
}

func NewCardImage(small, large string) *CardImage {
	return &CardImage{SmallImageURL: small, LargeImageURL: large}
}

func NewCard(t CardType, title, text, content string, image *CardImage, permissions []string) Card {
	return Card{
		Type:        t,
		Title:       title,
		Text:        text,
		Content:     content,
		Image:       image,
		Permissions: permissions,
	}
}

// SimpleCard has a title and content, no image.
func SimpleCard(title, content string) Card {
	return Card{Type: CardSimple, Title: title, Content: content}
}

// StandardCard has a title, text and an image block, no content.
func StandardCard(title, text, smallImageURL, largeImageURL string) Card {
	return Card{
		Type:  CardStandard,
		Title: title,
		Text:  text,
		Image: NewCardImage(smallImageURL, largeImageURL),
	}
}

func LinkAccountCard() Card {
	return Card{Type: CardLinkAccount}
}

// PermissionsCard asks the user to grant the given permission scopes.
func PermissionsCard(permissions []string) Card {
	return Card{Type: CardAskForPermission, Permissions: permissions}
}
