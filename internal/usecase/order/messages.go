package order

import (
	"fmt"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
)

var customerStatusTitles = map[domain.OrderStatus]string{
	domain.StatusPending:    "Заказ ожидает обработки",
	domain.StatusInProgress: "Заказ в работе",
	domain.StatusReview:     "Заказ на проверке",
	domain.StatusCompleted:  "Заказ выполнен",
	domain.StatusCancelled:  "Заказ отменен",
}

var customerStatusMessages = map[domain.OrderStatus]string{
	domain.StatusPending:    "Заказ \"%s\" ожидает обработки.",
	domain.StatusInProgress: "Заказ \"%s\" взят в работу.",
	domain.StatusReview:     "Заказ \"%s\" находится на проверке.",
	domain.StatusCompleted:  "Заказ \"%s\" успешно выполнен!",
	domain.StatusCancelled:  "Заказ \"%s\" был отменен.",
}

func customerStatusMessage(order *domain.Order) (string, string) {
	return customerStatusTitles[order.Status], fmt.Sprintf(customerStatusMessages[order.Status], order.ServiceName)
}

func adminStatusMessage(order *domain.Order, comment *string) (string, string) {
	message := fmt.Sprintf("Ваша заявка \"%s\" %s.", order.ServiceName, order.Status.Label())
	if comment != nil {
		message += " Комментарий: " + *comment
	}
	return "Статус заявки изменён", message
}
