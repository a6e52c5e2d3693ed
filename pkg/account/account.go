/*
 * Copyright 2026 the GeoSweep Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package account implements one authenticated worker identity: credential
// parsing, login with retry and backoff, single-point query execution,
// response parsing and persistence submission, plus the session manager
// that keeps identities logged in.
package account

import (
	"fmt"
	"strings"
	"time"

	"github.com/geosweep/geosweep/pkg/logger"
	"github.com/geosweep/geosweep/pkg/models"
)

// Credential is one account's login material.
type Credential struct {
	User     string
	Pass     string
	Provider string
}

// ParseCredential parses a "user[:pass]@provider" string. When the
// password segment is absent, fallbackPass is used.
func ParseCredential(input, fallbackPass string) (Credential, error) {
	at := strings.LastIndex(input, "@")
	if at <= 0 || at == len(input)-1 {
		return Credential{}, fmt.Errorf("%w: %q", ErrInvalidCredential, input)
	}

	userPass := input[:at]
	provider := input[at+1:]

	user := userPass
	pass := fallbackPass

	if colon := strings.Index(userPass, ":"); colon >= 0 {
		user = userPass[:colon]
		pass = userPass[colon+1:]
	}

	if user == "" {
		return Credential{}, fmt.Errorf("%w: %q", ErrInvalidCredential, input)
	}

	return Credential{User: user, Pass: pass, Provider: provider}, nil
}

// Account is one worker identity. It lives for the whole process; the
// client handle is created lazily by the session manager and mutated in
// place as authentication happens.
type Account struct {
	cred      Credential
	client    Client
	store     Store
	clock     Clock
	logger    logger.Logger
	stepDelay time.Duration
	lastLogin time.Time
}

// NewAccount creates an Account from its combined credential string.
func NewAccount(input, fallbackPass string, stepDelay time.Duration, store Store, clock Clock, log logger.Logger) (*Account, error) {
	cred, err := ParseCredential(input, fallbackPass)
	if err != nil {
		return nil, err
	}

	if clock == nil {
		clock = realClock{}
	}

	return &Account{
		cred:      cred,
		store:     store,
		clock:     clock,
		logger:    log,
		stepDelay: stepDelay,
	}, nil
}

// User returns the account's username.
func (a *Account) User() string {
	return a.cred.User
}

// LocationCoords reports the coordinates the remote service currently has
// for this account. Only meaningful after a successful login.
func (a *Account) LocationCoords() models.Coordinate {
	return a.client.LocationCoords()
}
