package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var errInvalidNumber = errors.New("invalid number")

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return credentialsInput{}, err
	}
	return input, nil
}

func parseRegistrationForm(c *fiber.Ctx) (registrationFormInput, error) {
	input := registrationFormInput{}
	if err := c.BodyParser(&input); err != nil {
		return registrationFormInput{}, err
	}
	return input, nil
}

func parseProfileForm(c *fiber.Ctx) (profileFormInput, error) {
	input := profileFormInput{}
	if err := c.BodyParser(&input); err != nil {
		return profileFormInput{}, err
	}
	return input, nil
}

func parseLoanApplication(c *fiber.Ctx) (loanApplicationInput, error) {
	input := loanApplicationInput{}
	if err := c.BodyParser(&input); err != nil {
		return loanApplicationInput{}, err
	}
	return input, nil
}

func parsePayment(c *fiber.Ctx) (paymentInput, error) {
	input := paymentInput{}
	if err := c.BodyParser(&input); err != nil {
		return paymentInput{}, err
	}
	return input, nil
}

func parseLoanStatus(c *fiber.Ctx) (loanStatusInput, error) {
	input := loanStatusInput{}
	if err := c.BodyParser(&input); err != nil {
		return loanStatusInput{}, err
	}
	return input, nil
}

func parseIntField(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errInvalidNumber
	}
	return value, nil
}

func parseFloatField(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errInvalidNumber
	}
	return value, nil
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || value == 0 {
		return 0, errInvalidNumber
	}
	return uint(value), nil
}
