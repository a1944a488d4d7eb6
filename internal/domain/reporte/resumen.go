package reporte

import (
	"fmt"
	"strings"
)

// Resumen produce las descripciones legibles de los filtros aplicados, en el
// mismo orden en que Aplicar los evalúa. El exportador las une con " | ".
func Resumen(spec FilterSpec, tipo Tipo) []string {
	if spec.Todos {
		return []string{"Todos"}
	}

	var aplicados []string

	if len(spec.Codigos) > 0 {
		etiqueta := "Códigos"
		if tipo.EsMovimiento() {
			etiqueta = "N° Factura"
		}
		aplicados = append(aplicados, etiqueta+": "+strings.Join(spec.Codigos, ", "))
	}

	if tipo.EsMovimiento() {
		if len(spec.CodigosMovimiento) > 0 {
			aplicados = append(aplicados, "Código: "+strings.Join(spec.CodigosMovimiento, ", "))
		}
		if spec.Fechas.Desde != "" {
			aplicados = append(aplicados, "Fecha desde: "+FechaLegible(spec.Fechas.Desde))
		}
		if spec.Fechas.Hasta != "" {
			aplicados = append(aplicados, "Fecha hasta: "+FechaLegible(spec.Fechas.Hasta))
		}
		if cfg, ok := spec.Campos[CampoCantidad]; ok {
			if desc := descripcionCampo("Cantidad", cfg); desc != "" {
				aplicados = append(aplicados, desc)
			}
		}
		return aplicados
	}

	for _, campo := range ordenCamposInventario {
		cfg, ok := spec.Campos[campo]
		if !ok {
			continue
		}
		etiqueta := strings.ToUpper(campo[:1]) + campo[1:]
		if desc := descripcionCampo(etiqueta, cfg); desc != "" {
			aplicados = append(aplicados, desc)
		}
	}

	switch spec.Stock.Op {
	case OpStockMinimo:
		aplicados = append(aplicados, fmt.Sprintf("Stock mínimo (%d)", spec.LimiteStock))
	case OpStockArriba:
		aplicados = append(aplicados, fmt.Sprintf("Stock arriba del mínimo (%d)", spec.LimiteStock))
	default:
		if desc := descripcionCampo("Stock", spec.Stock); desc != "" {
			aplicados = append(aplicados, desc)
		}
	}
	return aplicados
}

// descripcionCampo describe un filtro numérico; vacío si el filtro es inerte.
func descripcionCampo(etiqueta string, cfg FiltroCampo) string {
	if cfg.inerte() {
		return ""
	}
	if cfg.Op == OpEntre {
		return fmt.Sprintf("%s: %s - %s", etiqueta, cfg.Valor1, cfg.Valor2)
	}
	return fmt.Sprintf("%s %s %s", etiqueta, SimboloOperador(cfg.Op), cfg.Valor1)
}

// SimboloOperador devuelve el símbolo del operador para el resumen.
func SimboloOperador(op Operador) string {
	switch op {
	case OpIgual:
		return "="
	case OpMayor:
		return ">"
	case OpMayorIgual:
		return ">="
	case OpMenor:
		return "<"
	case OpMenorIgual:
		return "<="
	case OpEntre:
		return "between"
	default:
		return string(op)
	}
}

// FechaLegible invierte una fecha ISO al orden de despliegue local:
// "2024-03-09" -> "09-03-2024". Cadenas sin guiones quedan igual.
func FechaLegible(iso string) string {
	partes := strings.Split(iso, "-")
	for i, j := 0, len(partes)-1; i < j; i, j = i+1, j-1 {
		partes[i], partes[j] = partes[j], partes[i]
	}
	return strings.Join(partes, "-")
}
