// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-serble-keeper/internal/service"
	"github.com/MKhiriev/go-serble-keeper/models"
)

var flagMessages = map[models.ErrorFlag]string{
	models.FlagNetwork:            "Отсутствует сеть или Сервер недоступен",
	models.FlagUnauthorized:       "Сессия недействительна, войдите снова",
	models.FlagNotFound:           "Не найдено",
	models.FlagBadApp:             "Неизвестное приложение",
	models.FlagNotCustomer:        "У аккаунта нет платёжного профиля",
	models.FlagNameTaken:          "Имя пользователя уже занято",
	models.FlagEmailInvalid:       "Некорректный email",
	models.FlagBadField:           "Поле не существует",
	models.FlagInvalidCredentials: "Неверный логин, пароль или код",
	models.FlagRejected:           "Сервер отклонил passkey",
	models.FlagMalformedChallenge: "Сервер прислал некорректный запрос passkey",
	models.FlagCeremonyFailed:     "Ошибка аутентификатора",
	models.FlagDecryptionFailed:   "Неверный пароль заметки или заметка повреждена",
	models.FlagNoEdits:            "Нет изменений",
}

// humanizeResult turns a failed result into a line for the status bar. A
// cancelled ceremony is not an error and yields "".
func humanizeResult[T any](res models.Result[T]) string {
	if res.Success || res.Cancelled() {
		return ""
	}
	switch {
	case errors.Is(res.Err, service.ErrPasswordRequired):
		return "Введите пароль заметки"
	case errors.Is(res.Err, service.ErrNoAppName):
		return "Укажите название приложения"
	case errors.Is(res.Err, service.ErrBadRedirectURI):
		return "Redirect URI должен быть полным http(s) адресом"
	case errors.Is(res.Err, service.ErrNoProducts):
		return "Укажите продукт"
	case errors.Is(res.Err, service.ErrEmptyTOTP):
		return "Введите код"
	}
	if msg, ok := flagMessages[res.Flag]; ok {
		return msg
	}
	if res.Err != nil {
		return res.Err.Error()
	}
	return "Неизвестная ошибка"
}
