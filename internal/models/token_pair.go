package models

import "time"

// TokenPair — пара токенов, выдаваемая при входе и ротации.
//
// Описание:
//   - AccessToken — короткоживущий JWT для доступа к API, отдаётся в теле ответа;
//   - RefreshToken — долгоживущий JWT, доставляется ТОЛЬКО в httpOnly-cookie;
//   - RefreshIssuedAt/RefreshExpiresAt — `iat`/`exp` refresh-токена (UTC),
//     RefreshIssuedAt персистится в сессию и служит проверкой ротации.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	RefreshIssuedAt  time.Time
	RefreshExpiresAt time.Time
}
