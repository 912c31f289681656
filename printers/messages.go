// Package printers contains the logic for printing information
package printers

import (
	"fmt"

	"github.com/tcping-ru/tcping/statistics"
)

// Output text is kept byte-for-byte stable; scripts parse it.
const (
	startFormat      = "TCPing %s [%s] с портом %d:"
	successFormat    = "Ответ от %s: время=%dмс"
	failureFormat    = "Не удалось подключиться к %s за %dмс"
	statisticsHeader = "Статистика TCPing:"
	packetsFormat    = "    Пакетов: отправлено = %d, получено = %d, потеряно = %d (%d%% потерь)"
	rttHeader        = "    Приблизительное время приема-передачи в мс:"
	rttFormat        = "        Минимальное = %dмс, Максимальное = %dмс, Среднее = %dмс"
	doneMessage      = "TCPing завершен."
)

func startMessage(s *statistics.Statistics) string {
	return fmt.Sprintf(startFormat, s.Hostname, s.Address, s.Port)
}

func successMessage(s *statistics.Statistics) string {
	return fmt.Sprintf(successFormat, s.Address, s.LatestMillis())
}

func failureMessage(s *statistics.Statistics) string {
	return fmt.Sprintf(failureFormat, s.Hostname, s.LatestMillis())
}

func lossPercent(s *statistics.Statistics) int64 {
	return statistics.RoundHalfUp(s.LossPercent())
}

func averageMillis(s *statistics.Statistics) int64 {
	return statistics.RoundHalfUp(s.AverageMillis())
}

func packetsMessage(s *statistics.Statistics) string {
	return fmt.Sprintf(packetsFormat, s.Budget, s.Successes, s.Failures, lossPercent(s))
}

func rttMessage(s *statistics.Statistics) string {
	return fmt.Sprintf(rttFormat, s.MinMillis(), s.MaxMillis(), averageMillis(s))
}
