package errors

import (
	"fmt"

	apperrors "github.com/burakmert236/matchday/common/errors"
	"github.com/burakmert236/matchday/common/models"
)

func TournamentNotFoundError(tournamentId string) *apperrors.AppError {
	return apperrors.New(apperrors.CodeNotFound,
		fmt.Sprintf("tournament not found: %s", tournamentId))
}

func TeamNotFoundError(teamId string) *apperrors.AppError {
	return apperrors.New(apperrors.CodeNotFound,
		fmt.Sprintf("team not found: %s", teamId))
}

func RegistrationDecidedError(current models.RegistrationStatus) *apperrors.AppError {
	return apperrors.New(apperrors.CodeConflict,
		fmt.Sprintf("registration already %s", current))
}

func InvalidRegistrationStatusError(status models.RegistrationStatus) *apperrors.AppError {
	return apperrors.New(apperrors.CodeInvalidInput,
		fmt.Sprintf("registration status must be approved or denied, got %q", status))
}

func PasswordMismatchError() *apperrors.AppError {
	return apperrors.New(apperrors.CodeInvalidInput, "passwords do not match")
}

func NoSessionError(role string) *apperrors.AppError {
	return apperrors.New(apperrors.CodeNotFound,
		fmt.Sprintf("no %s session, login required", role))
}

func EmptyMessageError() *apperrors.AppError {
	return apperrors.New(apperrors.CodeInvalidInput, "message text is empty")
}

func NoSelectionError(kind string) *apperrors.AppError {
	return apperrors.New(apperrors.CodeNotFound,
		fmt.Sprintf("no %s selected", kind))
}
