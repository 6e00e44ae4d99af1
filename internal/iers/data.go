package iers

import "time"

// Historical and predicted DUT1 values, generated from public IERS
// data. Each run is a letter and a day count; the letter encodes the
// offset in tenths of a second relative to 'k' (so 'h' is -0.3 s and
// 'n' is +0.3 s). One value per calendar day from dut1DataStart.
var dut1DataStart = time.Date(1972, 6, 1, 0, 0, 0, 0, time.UTC)

const dut1Runs = "" +
	"i30s203r31q29p28o30n36m40l39k33j31i31h18r19q38p32o31n33m48l45k37" +
	"j33i34h15r22q34p33o34n37m49l45k36j32i36h7r28q33p32o30n33m42l42" +
	"k34j29i33h30r6q36p34o31n32m42l51k37j32i33h31q32p29o29n30m32l47" +
	"k47j36i33h32g18q16p35o33n32m35l45k51j39i39h38g2q40p39o38n43m57" +
	"l50k39j42i41h43g37f39e39o19n62m43l45k48j44i39h44g21q44p48o43n41" +
	"m36l34k34j38i47s1r64q50p42o56n57m52l100k61j62i66h52g67f1p103o56" +
	"n68m69l107k82j72i67h63g113f63e51o11n60m59l121k71j71i67h57g93f61" +
	"e48d12n41m44l46k61j66i47h45g15q32p44o41n48m74l49k45j44i40h37g38" +
	"f50e5o60n49m40l40k38j38i36h39g25q31p50o41n41m43l41k39j40i39s24" +
	"r57q43p41o39n38m35l37k43j69i44h42g37q4p51o45n44m69l70k50j54i53" +
	"h40g49f18p59o53n52m57l48k53j127i70h30r62q79p152o82n106m184l125" +
	"k217j133i252h161g392f322e290n116m154l85k83j91i168h105g147f105e42" +
	"o70n91m154l119k84j217i126h176g97f91e52o116n98m70l133k91j91i77" +
	"h140g91f84e70d34n72m76l66k53j56i105h77g45q25p63o91n154m105l190" +
	"k118j105i807j349k310"

func decodeRuns(runs string) []int8 {
	var out []int8
	for i := 0; i < len(runs); {
		offset := int8(runs[i]) - 'k'
		i++
		n := 0
		for i < len(runs) && runs[i] >= '0' && runs[i] <= '9' {
			n = n*10 + int(runs[i]-'0')
			i++
		}
		for ; n > 0; n-- {
			out = append(out, offset)
		}
	}
	return out
}
