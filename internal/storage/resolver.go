package storage

import "errors"

// resolveCase holds the single copy of the precedence rule for unified lookups:
// a Claim always wins over a Return when both could match. Both lookup funcs
// must report a miss as ErrNotFound.
func resolveCase(findClaim func() (*Claim, error), findReturn func() (*Return, error)) (*Case, error) {
	claim, err := findClaim()
	switch {
	case err == nil:
		return &Case{Type: CaseTypeClaim, Claim: claim}, nil
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}

	ret, err := findReturn()
	switch {
	case err == nil:
		return &Case{Type: CaseTypeReturn, Return: ret}, nil
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}

	return nil, ErrNotFound
}
