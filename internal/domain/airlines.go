package domain

// airlineNames maps IATA airline codes to localized display names.
// The upstream flight calendar returns only carrier codes; rows collected
// before the name backfill may carry an empty name.
var airlineNames = map[string]string{
	// 한국
	"KE": "대한항공",
	"OZ": "아시아나항공",
	"7C": "제주항공",
	"LJ": "진에어",
	"TW": "티웨이항공",
	"BX": "에어부산",
	"ZE": "이스타항공",
	"RS": "에어서울",
	// 일본
	"NH": "전일본공수(ANA)",
	"JL": "일본항공(JAL)",
	"MM": "피치항공",
	"IJ": "스프링재팬",
	// 동남아시아
	"SQ": "싱가포르항공",
	"TR": "스쿠트",
	"TG": "타이항공",
	"FD": "타이에어아시아",
	"VZ": "타이비엣젯",
	"VN": "베트남항공",
	"VJ": "비엣젯",
	"PR": "필리핀항공",
	"5J": "세부퍼시픽",
	"GA": "가루다인도네시아",
	// 동아시아
	"CI": "중화항공",
	"BR": "에바항공",
	"IT": "타이거에어대만",
	"CX": "캐세이퍼시픽",
	"UO": "홍콩익스프레스",
	// 유럽
	"AF": "에어프랑스",
	"BA": "브리티시항공",
	"AZ": "ITA항공",
	"LH": "루프트한자",
	"TK": "터키항공",
	"KL": "KLM네덜란드항공",
	// 미주
	"DL": "델타항공",
	"UA": "유나이티드항공",
	"AA": "아메리칸항공",
	// 중동
	"QR": "카타르항공",
	"EK": "에미레이트항공",
}

// AirlineName returns the display name for an IATA airline code,
// falling back to the code itself when the carrier is unknown.
func AirlineName(code string) string {
	if name, ok := airlineNames[code]; ok {
		return name
	}
	return code
}
