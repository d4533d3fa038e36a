package engine

// Evaluate aplica a tabela de regras a uma aposta validada e a um resultado.
// Retorna o veredito e o ganho LÍQUIDO em centavos (0 em caso de perda).
//
// Política de pagamento: o valor apostado é debitado antes do sorteio;
// em caso de vitória o orquestrador credita stake + ganho líquido.
// Função pura e determinística; mesma entrada sempre produz a mesma saída.
func Evaluate(b BetSpec, o Outcome) (won bool, payoutCents int64) {
	rule, ok := Rules[b.Family]
	if !ok {
		return false, 0
	}
	if !rule.Wins(o, b) {
		return false, 0
	}
	return true, b.AmountCents * rule.Multiplier
}
