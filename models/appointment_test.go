package models

import (
	"testing"
	"time"
)

func TestWeekdayOrderSundayFirst(t *testing.T) {
	if len(WeekdayOrder) != 7 {
		t.Fatalf("esperava 7 dias, obtive %d", len(WeekdayOrder))
	}
	if WeekdayOrder[0] != time.Sunday {
		t.Fatalf("a ordem canônica deve começar no domingo, começou em %v", WeekdayOrder[0])
	}
	for i, d := range WeekdayOrder {
		if int(d) != i {
			t.Fatalf("posição %d: esperava %v, obtive %v", i, time.Weekday(i), d)
		}
	}
}

func TestWeekdayNamePT(t *testing.T) {
	cases := map[time.Weekday]string{
		time.Sunday:    "Domingo",
		time.Monday:    "Segunda",
		time.Tuesday:   "Terça",
		time.Wednesday: "Quarta",
		time.Thursday:  "Quinta",
		time.Friday:    "Sexta",
		time.Saturday:  "Sábado",
	}
	for d, want := range cases {
		if got := WeekdayNamePT(d); got != want {
			t.Errorf("WeekdayNamePT(%v) = %q, esperava %q", d, got, want)
		}
	}
}

func TestWeekdayFromNamePT(t *testing.T) {
	for _, d := range WeekdayOrder {
		got, ok := WeekdayFromNamePT(WeekdayNamePT(d))
		if !ok || got != d {
			t.Fatalf("ida e volta falhou para %v: obtive %v (ok=%v)", d, got, ok)
		}
	}
	if _, ok := WeekdayFromNamePT("Feriado"); ok {
		t.Fatal("nome desconhecido não deveria resolver")
	}
}

func TestMonthKey(t *testing.T) {
	d := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	if got := MonthKey(d); got != "2024-03" {
		t.Fatalf("MonthKey = %q, esperava 2024-03", got)
	}
}

func TestDateSpan(t *testing.T) {
	d1 := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC)
	table := NewAppointmentTable([]AppointmentRecord{
		{Date: &d2},
		{}, // sem data: fora do intervalo
		{Date: &d1},
	}, LoadQuality{})

	min, max, ok := table.DateSpan()
	if !ok {
		t.Fatal("esperava intervalo de datas")
	}
	if !min.Equal(d1) || !max.Equal(d2) {
		t.Fatalf("intervalo = [%v, %v], esperava [%v, %v]", min, max, d1, d2)
	}

	empty := NewAppointmentTable([]AppointmentRecord{{}}, LoadQuality{})
	if _, _, ok := empty.DateSpan(); ok {
		t.Fatal("tabela sem datas válidas não deveria ter intervalo")
	}
}
