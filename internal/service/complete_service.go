// Package service содержит бизнес-логику приложения.
package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Avimitin/plct-archrv-pkg-bot/internal/apperrors"
	"github.com/Avimitin/plct-archrv-pkg-bot/internal/notify"
	"github.com/Avimitin/plct-archrv-pkg-bot/internal/storage"
)

// Префиксы автоматических сообщений в канале.
const (
	mergePrefix  = "<code>(auto-merge)</code>"
	unmarkPrefix = "<code>(auto-unmark)</code>"
)

// CompleteService выполняет workflow завершения пакета: авторизация, снятие
// назначения, уведомления и чистка пометок.
type CompleteService struct {
	repo     storage.StatusRepository
	bot      notify.Notifier
	apiToken string
}

// NewCompleteService создаёт новый CompleteService.
func NewCompleteService(repo storage.StatusRepository, bot notify.Notifier, apiToken string) *CompleteService {
	return &CompleteService{repo: repo, bot: bot, apiToken: apiToken}
}

// CompletePackage проводит пакет pkgname через завершение со статусом status.
//
// Доставка уведомлений - жёсткая граница отказа: любая неудачная отправка
// фатальна для запроса. Ошибка хранилища после первичного уведомления -
// мягкая: о ней сообщается в тот же канал, а запрос продолжается.
func (c *CompleteService) CompletePackage(ctx context.Context, pkgname, status, token string) *apperrors.AppError {
	if token != c.apiToken {
		return apperrors.New(apperrors.ErrForbidden, "invalid token")
	}

	if !storage.PackageStatus(status).IsValid() {
		detail := fmt.Sprintf("required 'ftbfs' or 'leaf', got %q", status)
		return apperrors.New(apperrors.ErrBadStatus, detail)
	}

	packager, err := c.repo.FindPackager(ctx, pkgname)
	if err != nil {
		log.Printf("fetch packager for %s failed: %v", pkgname, err)
		return &apperrors.AppError{
			Code:    apperrors.ErrStoreFailure,
			Message: "fail to fetch packager",
			Detail:  err.Error(),
		}
	}

	text := fmt.Sprintf("%s ping %s: %s has been built",
		mergePrefix, notify.MentionLink(packager.Alias, packager.TgUID), pkgname)
	if err := c.bot.SendMessage(ctx, text); err != nil {
		log.Printf("send completion message for %s failed: %v", pkgname, err)
		return apperrors.New(apperrors.ErrNotifyFailure, err.Error())
	}

	if err := c.repo.DropAssignment(ctx, pkgname, packager.TgUID); err != nil {
		// Канал уже знает о завершении; ошибку хранилища сообщаем туда же,
		// не роняя запрос.
		log.Printf("drop assignment of %s failed: %v", pkgname, err)
		text := fmt.Sprintf("%s failed: %v", mergePrefix, err)
		if err := c.bot.SendMessage(ctx, text); err != nil {
			log.Printf("send failure message for %s failed: %v", pkgname, err)
			return apperrors.New(apperrors.ErrNotifyFailure, err.Error())
		}
	}

	if err := <-c.cleanupMarks(ctx, pkgname); err != nil {
		log.Printf("send unmark message for %s failed: %v", pkgname, err)
		return apperrors.New(apperrors.ErrNotifyFailure, err.Error())
	}

	return nil
}

// cleanupMarks снимает с пакета пометки из фиксированного словаря и сообщает
// результат в канал. Выполняется в отдельной горутине; возвращённый канал
// отдаёт ошибку отправки уведомления и обязан быть дочитан до ответа клиенту.
func (c *CompleteService) cleanupMarks(ctx context.Context, pkgname string) <-chan error {
	done := make(chan error, 1)

	go func() {
		removed, err := c.repo.RemoveMarks(ctx, pkgname, storage.CleanupMarks())
		if err != nil {
			log.Printf("delete marks for %s failed: %v", pkgname, err)
			text := fmt.Sprintf("fail to delete marks for %s: \n<code>%v</code>", pkgname, err)
			done <- c.bot.SendMessage(ctx, text)
			return
		}

		names := make([]string, 0, len(removed))
		for _, m := range removed {
			names = append(names, string(m))
		}

		text := fmt.Sprintf("%s %s has been built, no longer flagged as: %s",
			unmarkPrefix, pkgname, strings.Join(names, ","))
		done <- c.bot.SendMessage(ctx, text)
	}()

	return done
}
