package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeEntrada = "entrada" // entrada: suma stock
	MovementTypeSaida   = "saida"   // salida: resta stock
)

// Motivos de movimiento.
const (
	ReasonCompra     = "compra"
	ReasonReposicao  = "reposicao"
	ReasonVenda      = "venda"
	ReasonDefeito    = "defeito"
	ReasonEmprestimo = "emprestimo"
	ReasonDevolucao  = "devolucao"
	ReasonOutro      = "outro"
)

// Movement representa un movimiento de stock (entrada o salida).
// Es un registro append-only: una vez creado nunca se edita ni se elimina.
// ProductName es un snapshot del nombre al momento del movimiento; no se
// actualiza si el producto se renombra o se borra después.
type Movement struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Type        string    `json:"type"`
	Reason      string    `json:"reason"`
	Quantity    int       `json:"quantity"`
	Responsible string    `json:"responsible"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ValidMovementType indica si el tipo es entrada o saida.
func ValidMovementType(t string) bool {
	return t == MovementTypeEntrada || t == MovementTypeSaida
}

// ValidReasonForType valida el par tipo/motivo como regla de construcción:
// entrada admite compra, reposicao, devolucao y outro; saida admite venda,
// defeito, emprestimo y outro.
func ValidReasonForType(movType, reason string) bool {
	switch movType {
	case MovementTypeEntrada:
		switch reason {
		case ReasonCompra, ReasonReposicao, ReasonDevolucao, ReasonOutro:
			return true
		}
	case MovementTypeSaida:
		switch reason {
		case ReasonVenda, ReasonDefeito, ReasonEmprestimo, ReasonOutro:
			return true
		}
	}
	return false
}
