package auth

import "context"

type LoginTestChecker struct {
	LoggedSessions map[string]int
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		LoggedSessions: map[string]int{},
	}
}

func (c *LoginTestChecker) IsLogged(_ context.Context, token string) (bool, error) {
	_, ok := c.LoggedSessions[token]
	return ok, nil
}

func (c *LoginTestChecker) UserIDFromToken(_ context.Context, token string) (int, error) {
	userID, ok := c.LoggedSessions[token]
	if !ok {
		return 0, ErrUserNotFound
	}
	return userID, nil
}
